package debug

import (
	"errors"
	"log"
	"os"
	"strconv"
)

// ErrAssertion is matched by every *Failure.
var ErrAssertion = errors.New("assertion failed")

// Failure describes a failed assertion. It is the value raised by
// PanicHandler.
type Failure struct {
	File string
	Line int
	Test string
}

func (f *Failure) Error() string {
	if f == nil {
		return ErrAssertion.Error()
	}
	return ErrAssertion.Error() + ": " + describe(f.File, f.Line, f.Test)
}

func (f *Failure) Unwrap() error { return ErrAssertion }

func describe(file string, line int, test string) string {
	var s string
	switch {
	case file != "":
		s = file + ":" + strconv.Itoa(line) + ": "
	case line != 0:
		s = "line " + strconv.Itoa(line) + ": "
	}
	if test == "" {
		return s + "<no message>"
	}
	return s + test
}

// replaced in tests
var exit = os.Exit

// AbortHandler is the default handler. It logs the failure and terminates the
// process.
func AbortHandler(file string, line int, test string) {
	log.Println(ErrAssertion.Error()+":", describe(file, line, test))
	exit(2)
}

// PanicHandler panics with a *Failure, which the caller may recover.
func PanicHandler(file string, line int, test string) {
	panic(&Failure{File: file, Line: line, Test: test})
}

// Catch runs fn with PanicHandler installed and returns the first failed
// assertion as error. Panics with other values are propagated.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*Failure)
			if !ok {
				panic(r)
			}
			err = f
		}
	}()
	WithHandler(PanicHandler, fn)
	return nil
}

// Counter counts failed assertions without interrupting the caller.
//
//	var c debug.Counter
//	defer debug.Scope(c.Handle)()
type Counter struct {
	Count int
	Last  Failure
}

func (c *Counter) Handle(file string, line int, test string) {
	c.Count++
	c.Last = Failure{File: file, Line: line, Test: test}
}

// Reset zeroes the counter.
func (c *Counter) Reset() { *c = Counter{} }
