// Tideland Go Result
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package result

//--------------------
// IMPORTS
//--------------------

import (
	"errors"
	"fmt"
)

//--------------------
// CONVERSIONS
//--------------------

// Of creates a Result out of the usual value and error pair. It is
// a success if err is nil.
func Of[T any](value T, err error) Result[T, error] {
	if err != nil {
		return NewErr[T](err)
	}
	return NewOk[T, error](value)
}

// Unpack returns the value and error pair of r. The value is the
// zero value in case of a failure. A failure without an error value,
// e.g. the zero Result, returns an invalid state error.
func Unpack[T any](r Result[T, error]) (T, error) {
	if r.ok {
		return r.value, nil
	}
	if r.err == nil {
		return r.value, NewError("Unpack", errors.New("failure without error value"), ErrInvalidState)
	}
	return r.value, r.err
}

// Try calls f and returns its value as success. A panic inside of f
// is returned as failure. Panics with a *ResultError, like those of
// Unwrap or Expect, are kept, all others are wrapped.
func Try[T any](f func() T) (r Result[T, error]) {
	defer func() {
		if reason := recover(); reason != nil {
			r = NewErr[T](recoverer(reason))
		}
	}()
	return NewOk[T, error](f())
}

// recoverer turns a panic reason into an error.
func recoverer(reason any) error {
	if err, ok := reason.(error); ok {
		var rerr *ResultError
		if errors.As(err, &rerr) {
			return err
		}
		return NewError("Try", err, ErrPanic)
	}
	return NewError("Try", fmt.Errorf("panic: %v", reason), ErrPanic)
}

// EOF
