// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/stat/combin"
)

func TestFactorial(t *testing.T) {
	want := map[int]int{0: 1, 1: 1, 2: 2, 3: 6, 4: 24, 5: 120, 10: 3628800}
	for x, w := range want {
		got, err := Factorial(x)
		if err != nil {
			t.Errorf("Factorial(%d): unexpected error %v", x, err)
		} else if got != w {
			t.Errorf("want Factorial(%d) = %d, got %d", x, w, got)
		}
	}

	for _, x := range []int{-1, -100} {
		if _, err := Factorial(x); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("want Factorial(%d) to fail with ErrInvalidArgument, got %v", x, err)
		}
	}
}

func TestChoose(t *testing.T) {
	want := map[[2]int]int{
		{5, 2}:  10,
		{5, 0}:  1,
		{0, 0}:  1,
		{10, 5}: 252,
		{6, 6}:  1,
	}
	for nk, w := range want {
		got, err := Choose(nk[0], nk[1])
		if err != nil {
			t.Errorf("Choose(%d, %d): unexpected error %v", nk[0], nk[1], err)
		} else if got != w {
			t.Errorf("want Choose(%d, %d) = %d, got %d", nk[0], nk[1], w, got)
		}
	}

	// k > n fails through the negative n-k factorial.
	for _, nk := range [][2]int{{-1, 0}, {5, -1}, {2, 3}} {
		if _, err := Choose(nk[0], nk[1]); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("want Choose(%d, %d) to fail with ErrInvalidArgument, got %v", nk[0], nk[1], err)
		}
	}
}

// TestChooseOracle checks Choose against gonum's binomial coefficient
// for every n small enough that the factorial quotient stays exact.
func TestChooseOracle(t *testing.T) {
	for n := 0; n <= 12; n++ {
		for k := 0; k <= n; k++ {
			got, err := Choose(n, k)
			if err != nil {
				t.Fatalf("Choose(%d, %d): unexpected error %v", n, k, err)
			}
			if want := combin.Binomial(n, k); got != want {
				t.Errorf("want Choose(%d, %d) = %d, got %d", n, k, want, got)
			}
		}
	}
}
