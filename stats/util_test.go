// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testDiscrete checks f against a table of expected values.
func testDiscrete(t *testing.T, name string, f func(int) float64, vals map[int]float64) {
	t.Helper()
	for arg, want := range vals {
		if got := f(arg); !aeq(want, got) {
			t.Errorf("want %s(%v) = %v, got %v", name, arg, want, got)
		}
	}
}
