// Package assert provides a debug-only sanity check used throughout the
// engine to document invariants without paying for them in release builds.
package assert

import "fmt"

// DEBUG enables Assert checks. It is a variable, not a constant: set to
// false, Assert returns at run time without evaluating anything further,
// but the call itself and its arguments remain.
var DEBUG = true

// Assert panics with a formatted message when cond is false and DEBUG is
// enabled. It is a documentation device, not error handling - callers never
// recover from it.
func Assert(cond bool, format string, args ...interface{}) {
	if !DEBUG {
		return
	}
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
