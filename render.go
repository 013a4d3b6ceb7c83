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
// RENDERING
//--------------------

// render returns the textual form of a payload used in diagnostics.
// Only payloads with a natural text form are rendered: errors,
// Stringers and scalar kinds. Everything else, including Unit and
// nil values, returns false.
func render(v any) (string, bool) {
	if isNil(v) || isUnit(v) {
		return "", false
	}
	switch v.(type) {
	case error, fmt.Stringer:
		return fmt.Sprint(v), true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(v), true
	}
	return "", false
}

// isNil checks for nil interfaces and typed nil references.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// diagnose appends the rendered payload to msg if possible.
func diagnose(msg string, payload any) string {
	if text, ok := render(payload); ok {
		return msg + " " + text
	}
	return msg
}

// EOF
