// Tideland Go Result - Unit Tests
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package result_test

//--------------------
// IMPORTS
//--------------------

import (
	"testing"

	"tideland.dev/go/asserts/verify"

	"tideland.dev/go/result"
)

//--------------------
// TESTS
//--------------------

// TestOkEqual verifies the comparison of Ok values.
func TestOkEqual(t *testing.T) {
	verify.True(t, result.OkEqual(result.Ok[int]{Value: 1}, result.Ok[int]{Value: 1}))
	verify.True(t, !result.OkEqual(result.Ok[int]{Value: 1}, result.Ok[int]{Value: 2}))
	verify.True(t, result.OkEqual(result.Ok[result.Unit]{}, result.Ok[result.Unit]{}))
	verify.True(t, !result.OkEqual(result.Ok[int]{}, result.Ok[result.Unit]{}))
	verify.True(t, !result.OkEqual(result.Ok[result.Unit]{}, result.Ok[int]{}))

	// Different payload types never match.
	verify.True(t, !result.OkEqual(result.Ok[int]{Value: 1}, result.Ok[int64]{Value: 1}))
	verify.True(t, result.OkEqual(result.Ok[string]{Value: "a"}, result.Ok[string]{Value: "a"}))

	// The declared payload types decide, not the dynamic ones.
	verify.True(t, !result.OkEqual(result.Ok[any]{Value: 1}, result.Ok[int]{Value: 1}))
	verify.True(t, result.OkEqual(result.Ok[any]{Value: 1}, result.Ok[any]{Value: 1}))
	verify.True(t, !result.OkEqual(result.Ok[any]{Value: result.Unit{}}, result.Ok[result.Unit]{}))

	// Uncomparable dynamic values are never equal.
	verify.True(t, !result.OkEqual(result.Ok[any]{Value: []int{1}}, result.Ok[any]{Value: []int{1}}))
	verify.True(t, !result.ErrEqual(result.Err[any]{Value: map[int]int{}}, result.Err[any]{Value: map[int]int{}}))
}

// TestErrEqual verifies the comparison of Err values.
func TestErrEqual(t *testing.T) {
	verify.True(t, result.ErrEqual(result.Err[string]{Value: "bad"}, result.Err[string]{Value: "bad"}))
	verify.True(t, !result.ErrEqual(result.Err[string]{Value: "bad"}, result.Err[string]{Value: "worse"}))
	verify.True(t, result.ErrEqual(result.Err[result.Unit]{}, result.Err[result.Unit]{}))
	verify.True(t, !result.ErrEqual(result.Err[string]{}, result.Err[result.Unit]{}))
	verify.True(t, !result.ErrEqual(result.Err[result.Unit]{}, result.Err[string]{}))
}

// TestVariantCopy verifies that wrappers are plain values.
func TestVariantCopy(t *testing.T) {
	ok := result.Ok[int]{Value: 1}
	okCopy := ok
	okCopy.Value = 2
	verify.Equal(t, ok.Value, 1)
	verify.Equal(t, okCopy.Value, 2)

	err := result.Err[int]{Value: 1}
	errCopy := err
	errCopy.Value = 2
	verify.Equal(t, err.Value, 1)
	verify.Equal(t, errCopy.Value, 2)
}

// TestVariantUnit verifies the unit detection and rendering.
func TestVariantUnit(t *testing.T) {
	verify.True(t, result.Ok[result.Unit]{}.IsUnit())
	verify.True(t, result.Err[result.Unit]{}.IsUnit())
	verify.True(t, !result.Ok[int]{}.IsUnit())
	verify.True(t, !result.Err[string]{}.IsUnit())
	verify.True(t, !result.Ok[any]{Value: result.Unit{}}.IsUnit())
	verify.True(t, !result.Err[any]{Value: result.Unit{}}.IsUnit())

	verify.Equal(t, result.Ok[result.Unit]{}.String(), "Ok()")
	verify.Equal(t, result.Err[result.Unit]{}.String(), "Err()")
	verify.Equal(t, result.Ok[int]{Value: 2}.String(), "Ok(2)")
	verify.Equal(t, result.Err[string]{Value: "bad"}.String(), "Err(bad)")
}

// EOF
