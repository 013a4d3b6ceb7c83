// Tideland Go Result
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package result

//--------------------
// COMBINATORS
//--------------------

// Map applies f to the success value and returns a new successful
// Result with its output. A failure is passed through with the same
// error value, f is not called then.
func Map[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return NewErr[U](r.err)
	}
	return NewOk[U, E](f(r.value))
}

// MapErr applies f to the failure value and returns a new failed
// Result with its output. A success is passed through untouched.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return NewOk[T, F](r.value)
	}
	return NewErr[T](f(r.err))
}

// MapOr returns f applied to the success value, or def in case of
// a failure.
func MapOr[T, E, U any](r Result[T, E], def U, f func(T) U) U {
	if !r.ok {
		return def
	}
	return f(r.value)
}

// MapOrElse returns f applied to the success value, or fallback
// applied to the failure value.
func MapOrElse[T, E, U any](r Result[T, E], f func(T) U, fallback func(E) U) U {
	if !r.ok {
		return fallback(r.err)
	}
	return f(r.value)
}

// MapErrOr returns f applied to the failure value, or def in case
// of a success.
func MapErrOr[T, E, U any](r Result[T, E], def U, f func(E) U) U {
	if r.ok {
		return def
	}
	return f(r.err)
}

// AndThen chains a fallible step. On success f decides the outcome,
// a failure is passed through without calling f.
func AndThen[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return NewErr[U](r.err)
	}
	return f(r.value)
}

// EOF
