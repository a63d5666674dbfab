// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import "github.com/dsnet/golib/errs"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "concise: " + string(e) }

// Sentinel error kinds raised by set operations. Every public method that
// can fail installs a deferred recoverError so that an internal
// errs.Panic(ErrX) surfaces as a plain returned error at the API boundary.
var (
	ErrOutOfRange            error = Error("element out of range")
	ErrEmptySet               error = Error("operation not valid on an empty set")
	ErrConcurrentModification error = Error("set was modified during iteration")
	ErrInvalidArgument        error = Error("invalid argument")
	ErrNoSuchElement          error = Error("iterator has no more elements")
)

// recoverError is installed via defer in every public method that can fail;
// it converts a panic carrying an error value (as produced by errs.Panic)
// into the method's named return, and re-panics anything else (including
// runtime errors). recover only stops a panic when the deferred function
// itself calls it, so the value is taken here and raised again inside a
// call that defers errs.Recover, which then sorts it as described.
func recoverError(err *error) {
	if ex := recover(); ex != nil {
		func() {
			defer errs.Recover(err)
			panic(ex)
		}()
	}
}

// assert panics with err if cond does not hold.
func assert(cond bool, err error) {
	errs.Assert(cond, err)
}
