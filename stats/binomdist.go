// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"github.com/pedrolucasjsrn/go-statkit/mathx"
)

// BinomialDist is a binomial distribution: the number of successes
// in N independent Bernoulli trials with success probability P.
//
// The PMF uses exact integer combinatorics, so it is only reliable
// for small trial counts (mathx.Choose overflows past 20!).
type BinomialDist struct {
	n int
	p float64
}

// NewBinomialDist returns a binomial distribution with n trials and
// success probability p. It fails with an error wrapping
// ErrInvalidArgument if n is negative or p is outside [0, 1].
func NewBinomialDist(n int, p float64) (*BinomialDist, error) {
	d := &BinomialDist{n: n, p: p}
	if err := d.check(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *BinomialDist) check() error {
	if d.n < 0 {
		return fmt.Errorf("number of trials %d is negative: %w", d.n, ErrInvalidArgument)
	}
	if d.p < 0 || d.p > 1 {
		return fmt.Errorf("probability of success %v is not between 0 and 1: %w", d.p, ErrInvalidArgument)
	}
	return nil
}

// N returns the number of trials.
func (d *BinomialDist) N() int { return d.n }

// P returns the probability of success in each trial.
func (d *BinomialDist) P() float64 { return d.p }

// SetN sets the number of trials. It fails with an error wrapping
// ErrInvalidArgument if n is negative, leaving the distribution
// unchanged.
func (d *BinomialDist) SetN(n int) error {
	staged := BinomialDist{n: n, p: d.p}
	if err := staged.check(); err != nil {
		return err
	}
	*d = staged
	return nil
}

// SetP sets the probability of success. It fails with an error
// wrapping ErrInvalidArgument if p is outside [0, 1], leaving the
// distribution unchanged.
func (d *BinomialDist) SetP(p float64) error {
	staged := BinomialDist{n: d.n, p: p}
	if err := staged.check(); err != nil {
		return err
	}
	*d = staged
	return nil
}

// PMF is the probability of getting exactly k successes in d.N()
// independent Bernoulli trials with probability d.P(). It is 0 for k
// outside [0, d.N()].
func (d *BinomialDist) PMF(k int) float64 {
	if k < 0 || k > d.n {
		return 0
	}
	// k is within [0, n], so Choose cannot fail.
	c, _ := mathx.Choose(d.n, k)
	return float64(c) * math.Pow(d.p, float64(k)) * math.Pow(1-d.p, float64(d.n-k))
}

// CDF is the probability of getting k or fewer successes, the exact
// partial sum of the PMF.
func (d *BinomialDist) CDF(k int) float64 {
	if k < 0 {
		return 0
	} else if k >= d.n {
		return 1
	}
	var sum float64
	for i := 0; i <= k; i++ {
		sum += d.PMF(i)
	}
	return sum
}

// Mean returns the mean of the distribution, N * P.
func (d *BinomialDist) Mean() float64 {
	return float64(d.n) * d.p
}

// Variance returns the variance of the distribution, N * P * (1-P).
func (d *BinomialDist) Variance() float64 {
	return float64(d.n) * d.p * (1 - d.p)
}
