// Tideland Go Result
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

/*
Package result provides a generic Result type holding either a success value
of type T or a failure value of type E. Other than the usual (T, error) pair
the error side can be any type, and both sides can be empty by using Unit.

A Result is a plain value. Copying it copies the payload, nothing is shared
and nothing is synchronized. Hand it over to another goroutine or guard it
with a mutex if it has to be shared.

# Creating Results

Results are created out of the Ok and Err wrappers or with the factories
doing both at once:

	a := result.FromOk[string](result.Ok[int]{Value: 2})
	b := result.FromErr[int](result.Err[string]{Value: "bad"})
	c := result.NewOk[int, string](2)
	d := result.NewErr[int]("bad")

	done := result.NewUnitOk[string]()
	failed := result.NewUnitErr[int]()

Code working with the standard (T, error) pair converts with Of and Unpack:

	cfg := result.Of(os.ReadFile(path))
	data, err := result.Unpack(cfg)

# Accessing Values

IsOk and IsErr tell the outcome. Ok and Err return the payload in the comma-ok
style and never fail:

	if n, ok := r.Ok(); ok {
		fmt.Println("got", n)
	}

Expect, ExpectErr, Unwrap and UnwrapErr return the payload directly and panic
with a *ResultError if the Result holds the other outcome. Use them only where
the outcome is already known. Unwrap and UnwrapErr add the other payload to
the panic message if it can be rendered as text. Try turns such a panic back
into a Result:

	r := result.Try(func() int {
		return parse(input).Unwrap()
	})

Contains and ContainsErr compare the payload. They are functions and not
methods, so only these calls require comparable payloads:

	result.Contains(c, 2)       // true
	result.ContainsErr(d, "bad") // true

# Transforming Results

Go methods cannot introduce new type parameters, so the combinators are
functions taking the Result first:

	length := result.Map(name, func(s string) int { return len(s) })
	wrapped := result.MapErr(r, func(e string) error { return errors.New(e) })
	label := result.MapOrElse(r,
		func(n int) string { return strconv.Itoa(n) },
		func(e string) string { return "error: " + e },
	)

A function passed to a combinator is only called for the matching outcome.

# Assignment

The outcome of a Result is fixed when it is created. AssignOk, AssignErr and
Assign replace the payload only and return an error with the code
ErrInvalidState if the outcome would change. The Result is not modified in
that case:

	r := result.NewOk[int, string](1)
	err := r.AssignErr(result.Err[string]{Value: "bad"})
	// result.IsInvalidState(err) == true, r still contains 1

A plain Go assignment replaces the whole Result including its outcome.
*/
package result
