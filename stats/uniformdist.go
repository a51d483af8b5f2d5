// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "fmt"

// DiscreteUniformDist is a discrete uniform distribution: every
// integer in [Low, High] has the same probability.
type DiscreteUniformDist struct {
	low, high int
}

// NewDiscreteUniformDist returns a discrete uniform distribution
// over [low, high]. It fails with an error wrapping
// ErrInvalidArgument if low > high.
func NewDiscreteUniformDist(low, high int) (*DiscreteUniformDist, error) {
	d := &DiscreteUniformDist{low: low, high: high}
	if err := d.check(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *DiscreteUniformDist) check() error {
	if d.low > d.high {
		return fmt.Errorf("interval [%d, %d] is inverted: %w", d.low, d.high, ErrInvalidArgument)
	}
	return nil
}

// Low returns the smallest value of the interval.
func (d *DiscreteUniformDist) Low() int { return d.low }

// High returns the largest value of the interval.
func (d *DiscreteUniformDist) High() int { return d.high }

// SetInterval sets the interval to [low, high]. It fails with an
// error wrapping ErrInvalidArgument if low > high, leaving the
// distribution unchanged.
func (d *DiscreteUniformDist) SetInterval(low, high int) error {
	staged := DiscreteUniformDist{low: low, high: high}
	if err := staged.check(); err != nil {
		return err
	}
	*d = staged
	return nil
}

// PMF is the probability of the outcome v, 1 / (High - Low + 1) for
// v inside [Low, High] and 0 outside.
func (d *DiscreteUniformDist) PMF(v int) float64 {
	if v < d.low || v > d.high {
		return 0
	}
	return 1 / float64(d.high-d.low+1)
}

// CDF is the probability of an outcome less than or equal to v.
func (d *DiscreteUniformDist) CDF(v int) float64 {
	if v < d.low {
		return 0
	} else if v >= d.high {
		return 1
	}
	return float64(v-d.low+1) / float64(d.high-d.low+1)
}

// Mean returns the mean of the distribution, (Low + High) / 2.
func (d *DiscreteUniformDist) Mean() float64 {
	return float64(d.low+d.high) / 2
}

// Variance returns the variance of the distribution,
// (High - Low) * (High - Low + 2) / 12.
func (d *DiscreteUniformDist) Variance() float64 {
	w := d.high - d.low
	return float64(w*(w+2)) / 12
}
