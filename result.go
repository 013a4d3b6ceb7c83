// Tideland Go Result
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package result // import "tideland.dev/go/result"

//--------------------
// IMPORTS
//--------------------

import (
	"errors"
)

//--------------------
// CONSTANTS
//--------------------

const (
	msgUnwrap    = "called `Result.Unwrap()` on `Err` value"
	msgUnwrapErr = "called `Result.UnwrapErr()` on `Ok` value"
)

//--------------------
// RESULT
//--------------------

// Result holds either a success value of type T or a failure value
// of type E. The outcome is set when the Result is created and only
// a plain assignment of a whole Result replaces it. The payload of
// the inactive outcome is always the zero value. The zero Result is
// a failure holding the zero E.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// FromOk creates a successful Result out of an Ok. The error type
// has to be given, the value type is inferred.
func FromOk[E, T any](o Ok[T]) Result[T, E] {
	return Result[T, E]{
		ok:    true,
		value: o.Value,
	}
}

// FromErr creates a failed Result out of an Err. The value type
// has to be given, the error type is inferred.
func FromErr[T, E any](e Err[E]) Result[T, E] {
	return Result[T, E]{
		err: e.Value,
	}
}

// NewOk creates a successful Result containing value.
func NewOk[T, E any](value T) Result[T, E] {
	return FromOk[E](Ok[T]{Value: value})
}

// NewErr creates a failed Result containing err.
func NewErr[T, E any](err E) Result[T, E] {
	return FromErr[T](Err[E]{Value: err})
}

// NewUnitOk creates a successful Result without a value.
func NewUnitOk[E any]() Result[Unit, E] {
	return FromOk[E](Ok[Unit]{})
}

// NewUnitErr creates a failed Result without an error value.
func NewUnitErr[T any]() Result[T, Unit] {
	return FromErr[T](Err[Unit]{})
}

// IsOk returns true if the Result is a success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// HasUnitOk returns true if the success type is Unit.
func (r Result[T, E]) HasUnitOk() bool {
	return isUnitType[T]()
}

// HasUnitErr returns true if the failure type is Unit.
func (r Result[T, E]) HasUnitErr() bool {
	return isUnitType[E]()
}

// Ok returns the success value and true, or the zero value and
// false if the Result is a failure.
func (r Result[T, E]) Ok() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure value and true, or the zero value and
// false if the Result is a success.
func (r Result[T, E]) Err() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Expect returns the success value. It panics with a *ResultError
// wrapping msg if the Result is a failure.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(NewError("Expect", errors.New(msg), ErrMisuse))
	}
	return r.value
}

// ExpectErr returns the failure value. It panics with a *ResultError
// wrapping msg if the Result is a success.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(NewError("ExpectErr", errors.New(msg), ErrMisuse))
	}
	return r.err
}

// Unwrap returns the success value. It panics with a *ResultError
// if the Result is a failure, the message then contains the failure
// value if it can be rendered as text.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(NewError("Unwrap", errors.New(diagnose(msgUnwrap, r.err)), ErrMisuse))
	}
	return r.value
}

// UnwrapErr returns the failure value. It panics with a *ResultError
// if the Result is a success, the message then contains the success
// value if it can be rendered as text.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(NewError("UnwrapErr", errors.New(diagnose(msgUnwrapErr, r.value)), ErrMisuse))
	}
	return r.err
}

// UnwrapOr returns the success value or fallback.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// UnwrapOrElse returns the success value or the value computed by
// f out of the failure value.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if !r.ok {
		return f(r.err)
	}
	return r.value
}

// AssignOk replaces the success value. The Result must already be
// a success, otherwise an invalid state error is returned and the
// Result stays unchanged.
func (r *Result[T, E]) AssignOk(o Ok[T]) error {
	if !r.ok {
		return NewError("AssignOk", errors.New("cannot assign Ok to failed result"), ErrInvalidState)
	}
	r.value = o.Value
	return nil
}

// AssignErr replaces the failure value. The Result must already be
// a failure, otherwise an invalid state error is returned and the
// Result stays unchanged.
func (r *Result[T, E]) AssignErr(e Err[E]) error {
	if r.ok {
		return NewError("AssignErr", errors.New("cannot assign Err to successful result"), ErrInvalidState)
	}
	r.err = e.Value
	return nil
}

// Assign copies the payload of other. Both Results must have the
// same outcome, otherwise an invalid state error is returned and
// the Result stays unchanged.
func (r *Result[T, E]) Assign(other Result[T, E]) error {
	if r.ok != other.ok {
		return NewError("Assign", errors.New("outcome of assigned result differs"), ErrInvalidState)
	}
	if other.ok {
		r.value = other.value
	} else {
		r.err = other.err
	}
	return nil
}

// String implements the Stringer interface.
func (r Result[T, E]) String() string {
	if r.ok {
		return Ok[T]{Value: r.value}.String()
	}
	return Err[E]{Value: r.err}.String()
}

//--------------------
// COMPARISON
//--------------------

// Contains returns true if r is a success with a value equal to v.
// Interface payloads holding values that cannot be compared never
// match.
func Contains[T comparable, E any](r Result[T, E], v T) bool {
	return r.ok && payloadEqual(r.value, v)
}

// ContainsErr returns true if r is a failure with a value equal to v.
func ContainsErr[T any, E comparable](r Result[T, E], v E) bool {
	return !r.ok && payloadEqual(r.err, v)
}

// Equal returns true if both Results have the same outcome and
// equal payloads.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return payloadEqual(a.value, b.value)
	}
	return payloadEqual(a.err, b.err)
}

// EOF
