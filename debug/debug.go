// Package debug provides contract assertions whose failures are dispatched to
// a process-wide, replaceable handler.
//
// Which context reaches the handler is selected at build time with one of the
// tags estd_assert_all, estd_assert_nofileline, estd_assert_nomessage or
// estd_noassert; without a tag the handler receives the line and the test but
// no file name. With estd_noassert all assertions compile to no-ops.
//
// This is not considered idiomatic Go, but might be useful in an embedded
// environment.
package debug

import "sync/atomic"

// HandlerFunc is called for every failed assertion. Depending on the build
// policy file may be empty, line may be zero and test may be empty.
type HandlerFunc func(file string, line int, test string)

var current atomic.Pointer[HandlerFunc]

func init() {
	SetHandler(AbortHandler)
}

// SetHandler replaces the process-wide handler. A nil handler silences all
// assertions.
func SetHandler(h HandlerFunc) {
	current.Store(&h)
}

// Handler returns the currently installed handler.
func Handler() HandlerFunc {
	if p := current.Load(); p != nil {
		return *p
	}
	return nil
}

// Scope installs h and returns a function restoring the previous handler.
// Scopes nest and must be unwound in reverse order, which the usual
//
//	defer debug.Scope(h)()
//
// guarantees on every exit path.
func Scope(h HandlerFunc) (restore func()) {
	prev := Handler()
	SetHandler(h)
	return func() { SetHandler(prev) }
}

// WithHandler runs fn with h installed. The previous handler is restored even
// if fn panics.
func WithHandler(h HandlerFunc, fn func()) {
	defer Scope(h)()
	fn()
}
