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
// ERROR TYPES
//--------------------

// ErrorCode defines the type of error that occurred.
type ErrorCode int

const (
	// ErrNone signals no error.
	ErrNone ErrorCode = iota
	// ErrMisuse signals the access of a payload the Result
	// does not hold.
	ErrMisuse
	// ErrInvalidState signals an assignment that would change
	// the outcome of a Result.
	ErrInvalidState
	// ErrPanic signals a panic caught by Try.
	ErrPanic
)

// String implements the Stringer interface.
func (ec ErrorCode) String() string {
	switch ec {
	case ErrNone:
		return "no error"
	case ErrMisuse:
		return "misuse"
	case ErrInvalidState:
		return "invalid state"
	case ErrPanic:
		return "panic"
	default:
		return "unknown error"
	}
}

// ResultError contains detailed information about a failed
// Result operation.
type ResultError struct {
	Op   string
	Err  error
	Code ErrorCode
}

// Error implements the error interface.
func (e *ResultError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("result %s: %v (%v)", e.Op, e.Err, e.Code)
	}
	return fmt.Sprintf("result %s: %v", e.Op, e.Code)
}

// Unwrap implements error unwrapping.
func (e *ResultError) Unwrap() error {
	return e.Err
}

// NewError creates a new result error.
func NewError(op string, err error, code ErrorCode) *ResultError {
	return &ResultError{
		Op:   op,
		Err:  err,
		Code: code,
	}
}

// IsMisuse returns true if err is or wraps a misuse error.
func IsMisuse(err error) bool {
	return hasCode(err, ErrMisuse)
}

// IsInvalidState returns true if err is or wraps an invalid
// state error.
func IsInvalidState(err error) bool {
	return hasCode(err, ErrInvalidState)
}

// hasCode checks the code of the first ResultError in the chain.
func hasCode(err error, code ErrorCode) bool {
	var rerr *ResultError
	if errors.As(err, &rerr) {
		return rerr.Code == code
	}
	return false
}

// EOF
