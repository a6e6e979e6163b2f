//go:build !estd_noassert

package debug

import "runtime"

// Guard more complex assertions (i.e. anything that could panic) with `if
// debug.Enabled{...}`, otherwise they can't be removed in release builds.
const Enabled = true

// Assert calls the installed handler if b is false. The result is b, so that
// callers can skip the offending operation if the handler returns.
func Assert(b bool, test string) bool {
	if !b {
		fail(test)
	}
	return b
}

//go:noinline
func fail(test string) {
	h := Handler()
	if h == nil {
		return
	}

	var file string
	var line int
	if Active.reportsLine() {
		// skip fail and Assert
		_, file, line, _ = runtime.Caller(2)
	}
	if !Active.reportsFile() {
		file = ""
	}
	if !Active.reportsTest() {
		test = ""
	}
	h(file, line, test)
}
