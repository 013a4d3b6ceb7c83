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
	"fmt"
	"reflect"
)

//--------------------
// UNIT
//--------------------

// Unit is the payload type of outcomes without a meaningful
// value. Its only value is Unit{}.
type Unit struct{}

// unitType is the reflected type of Unit.
var unitType = reflect.TypeFor[Unit]()

// isUnit checks if the dynamic type of v is Unit.
func isUnit(v any) bool {
	_, ok := v.(Unit)
	return ok
}

// isUnitType checks if the declared type T is Unit.
func isUnitType[T any]() bool {
	return reflect.TypeFor[T]() == unitType
}

//--------------------
// OK
//--------------------

// Ok tags a successful value. Ok[Unit] is a pure tag.
type Ok[T any] struct {
	Value T
}

// IsUnit returns true if the Ok is declared without a payload.
func (o Ok[T]) IsUnit() bool {
	return isUnitType[T]()
}

// String implements the Stringer interface.
func (o Ok[T]) String() string {
	if o.IsUnit() {
		return "Ok()"
	}
	return fmt.Sprintf("Ok(%v)", o.Value)
}

// OkEqual compares two Ok values. A unit Ok only equals another
// unit Ok, differing declared payload types are never equal. So
// Ok[any]{Value: 1} does not equal Ok[int]{Value: 1}.
func OkEqual[T, U comparable](a Ok[T], b Ok[U]) bool {
	return wrapperEqual[T, U](a.Value, b.Value)
}

//--------------------
// ERR
//--------------------

// Err tags a failure value. Err[Unit] is a pure tag.
type Err[E any] struct {
	Value E
}

// IsUnit returns true if the Err is declared without a payload.
func (e Err[E]) IsUnit() bool {
	return isUnitType[E]()
}

// String implements the Stringer interface.
func (e Err[E]) String() string {
	if e.IsUnit() {
		return "Err()"
	}
	return fmt.Sprintf("Err(%v)", e.Value)
}

// ErrEqual compares two Err values following the rules of OkEqual.
func ErrEqual[E, F comparable](a Err[E], b Err[F]) bool {
	return wrapperEqual[E, F](a.Value, b.Value)
}

//--------------------
// HELPER
//--------------------

// wrapperEqual compares two wrapped payloads by their declared
// types first and their values second.
func wrapperEqual[T, U any](a T, b U) bool {
	if reflect.TypeFor[T]() != reflect.TypeFor[U]() {
		return false
	}
	if isUnitType[T]() {
		return true
	}
	return payloadEqual(a, b)
}

// payloadEqual compares two payloads with ==. Interface payloads
// holding values that cannot be compared, like slices, maps or
// funcs, are never equal instead of panicking.
func payloadEqual(a, b any) bool {
	if !canCompare(a) || !canCompare(b) {
		return false
	}
	return a == b
}

// canCompare checks if v can be used with == without a panic.
func canCompare(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}

// EOF
