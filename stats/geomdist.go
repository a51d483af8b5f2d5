// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// GeometricDist is a geometric distribution: the number of Bernoulli
// trials needed to get the first success, with success probability
// P. Trial counts start at 1.
type GeometricDist struct {
	p float64
}

// NewGeometricDist returns a geometric distribution with success
// probability p. It fails with an error wrapping ErrInvalidArgument
// if p is outside (0, 1].
func NewGeometricDist(p float64) (*GeometricDist, error) {
	d := &GeometricDist{p: p}
	if err := d.check(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *GeometricDist) check() error {
	if d.p <= 0 || d.p > 1 {
		return fmt.Errorf("probability of success %v is not in (0, 1]: %w", d.p, ErrInvalidArgument)
	}
	return nil
}

// P returns the probability of success in each trial.
func (d *GeometricDist) P() float64 { return d.p }

// SetP sets the probability of success. It fails with an error
// wrapping ErrInvalidArgument if p is outside (0, 1], leaving the
// distribution unchanged.
func (d *GeometricDist) SetP(p float64) error {
	staged := GeometricDist{p: p}
	if err := staged.check(); err != nil {
		return err
	}
	*d = staged
	return nil
}

// PMF is the probability that the first success arrives on exactly
// the n'th trial, (1-P)^(n-1) * P. It is 0 for negative n. n = 0 is
// below the support but evaluates the same formula, giving
// P / (1-P).
func (d *GeometricDist) PMF(n int) float64 {
	if n < 0 {
		return 0
	}
	return math.Pow(1-d.p, float64(n-1)) * d.p
}

// CDF is the probability that the first success arrives on or before
// the n'th trial, 1 - (1-P)^n.
func (d *GeometricDist) CDF(n int) float64 {
	if n < 1 {
		return 0
	}
	return 1 - math.Pow(1-d.p, float64(n))
}

// Mean returns the mean of the distribution, 1 / P.
func (d *GeometricDist) Mean() float64 {
	return 1 / d.p
}

// Variance returns the variance of the distribution, (1-P) / P².
func (d *GeometricDist) Variance() float64 {
	return (1 - d.p) / (d.p * d.p)
}
