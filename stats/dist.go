// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A DiscreteDist is a discrete statistical distribution over integer
// outcomes.
type DiscreteDist interface {
	// PMF returns the probability mass of this distribution at
	// k. Values outside the support have probability 0; they are
	// valid queries, not errors.
	PMF(k int) float64

	// CDF returns the probability of an outcome less than or
	// equal to k. This is the sum of the PMF over the support up
	// to and including k.
	CDF(k int) float64

	// Mean returns the mean of this distribution.
	Mean() float64

	// Variance returns the variance of this distribution.
	Variance() float64
}
