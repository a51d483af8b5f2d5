// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx implements exact integer combinatorics.
//
// All arithmetic is plain machine-int arithmetic. Factorial overflows
// int64 past 20!, so Choose is only exact for small n. That is the
// intended trade-off: these primitives back distributions over small
// trial counts, where exact counts matter more than range.
package mathx // import "github.com/pedrolucasjsrn/go-statkit/mathx"

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an argument is outside the
// domain of a combinatorial function.
var ErrInvalidArgument = errors.New("invalid argument")

// Factorial returns x! computed by exact integer multiplication.
// Factorial(0) and Factorial(1) are both 1.
//
// It fails with an error wrapping ErrInvalidArgument if x is
// negative. Results overflow int for x > 20.
func Factorial(x int) (int, error) {
	if x < 0 {
		return 0, fmt.Errorf("factorial of negative number %d: %w", x, ErrInvalidArgument)
	}
	f := 1
	for i := 2; i <= x; i++ {
		f *= i
	}
	return f, nil
}

// Choose returns the number of ways to choose k unordered elements
// from a set of n, computed as n! / ((n-k)! * k!).
//
// It fails with an error wrapping ErrInvalidArgument if n, k, or n-k
// is negative; in particular k > n fails through the n-k check. Like
// Factorial, it has no overflow protection.
func Choose(n, k int) (int, error) {
	nf, err := Factorial(n)
	if err != nil {
		return 0, err
	}
	df, err := Factorial(n - k)
	if err != nil {
		return 0, err
	}
	kf, err := Factorial(k)
	if err != nil {
		return 0, err
	}
	return nf / (df * kf), nil
}
