// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Real is the constraint satisfied by any arithmetic numeric type.
type Real interface {
	constraints.Integer | constraints.Float
}

// A Sample is an ordered collection of values of a numeric type,
// together with a flag recording whether the values are a whole
// population or a sample drawn from a larger one. The flag only
// affects the divisor of Variance (N for a population, N-1 for
// sample data); every other statistic ignores it.
//
// A Sample owns its values: SetValues copies the given slice in and
// Values copies it back out, so callers never alias the internal
// state. Queries never mutate the sample (Median and Percentile sort
// a copy), so a single Sample is safe for concurrent readers as long
// as no goroutine calls a setter.
type Sample[T Real] struct {
	xs         []T
	population bool
}

// NewSample returns a Sample over xs, treated as population data.
// Call SetPopulation(false) for sample data.
func NewSample[T Real](xs ...T) *Sample[T] {
	s := &Sample[T]{population: true}
	return s.SetValues(xs...)
}

// Values returns a copy of the sample's values in their stored
// order.
func (s *Sample[T]) Values() []T {
	return slices.Clone(s.xs)
}

// Population reports whether the values are treated as a whole
// population.
func (s *Sample[T]) Population() bool {
	return s.population
}

// Len returns the number of values in the sample.
func (s *Sample[T]) Len() int {
	return len(s.xs)
}

// SetValues replaces the sample's values with a copy of xs. The old
// values are discarded in full. It returns s.
func (s *Sample[T]) SetValues(xs ...T) *Sample[T] {
	s.xs = slices.Clone(xs)
	return s
}

// SetPopulation sets whether the values are treated as a whole
// population. It returns s.
func (s *Sample[T]) SetPopulation(population bool) *Sample[T] {
	s.population = population
	return s
}

// sorted returns the sample's values in ascending order without
// disturbing the stored order.
func (s *Sample[T]) sorted() []T {
	xs := slices.Clone(s.xs)
	slices.Sort(xs)
	return xs
}

// Sum returns the sum of the sample, or 0 if the sample is empty.
func (s *Sample[T]) Sum() float64 {
	var sum float64
	for _, x := range s.xs {
		sum += float64(x)
	}
	return sum
}

// SumBy returns the sum of f applied to every value of the sample,
// or 0 if the sample is empty.
func (s *Sample[T]) SumBy(f func(T) float64) float64 {
	var sum float64
	for _, x := range s.xs {
		sum += f(x)
	}
	return sum
}

// Mean returns the arithmetic mean of the sample, or 0 if the sample
// is empty.
func (s *Sample[T]) Mean() float64 {
	if len(s.xs) == 0 {
		return 0
	}
	return s.Sum() / float64(len(s.xs))
}

// GeoMean returns the geometric mean of the sample, or 0 if the
// sample is empty. It returns NaN if any value is non-positive.
func (s *Sample[T]) GeoMean() float64 {
	if len(s.xs) == 0 {
		return 0
	}
	var logSum float64
	for _, x := range s.xs {
		if x <= 0 {
			return nan
		}
		logSum += math.Log(float64(x))
	}
	return math.Exp(logSum / float64(len(s.xs)))
}

// Median returns the middle value of the sample in ascending order,
// or the mean of the two middle values if the size is even. It fails
// with ErrEmptyData if the sample is empty.
func (s *Sample[T]) Median() (float64, error) {
	if len(s.xs) == 0 {
		return 0, ErrEmptyData
	}
	xs := s.sorted()
	mid := len(xs) / 2
	if len(xs)%2 == 0 {
		return (float64(xs[mid-1]) + float64(xs[mid])) / 2, nil
	}
	return float64(xs[mid]), nil
}

// Mode returns the most frequent value of the sample. Ties between
// equally frequent values are broken by returning the smallest. It
// fails with ErrEmptyData if the sample is empty.
func (s *Sample[T]) Mode() (T, error) {
	if len(s.xs) == 0 {
		var zero T
		return zero, ErrEmptyData
	}
	freq := make(map[T]int, len(s.xs))
	for _, x := range s.xs {
		freq[x]++
	}
	best, bestCount := s.xs[0], 0
	for x, count := range freq {
		if count > bestCount || (count == bestCount && x < best) {
			best, bestCount = x, count
		}
	}
	return best, nil
}

// Min returns the smallest value of the sample. It fails with
// ErrEmptyData if the sample is empty.
func (s *Sample[T]) Min() (T, error) {
	if len(s.xs) == 0 {
		var zero T
		return zero, ErrEmptyData
	}
	return slices.Min(s.xs), nil
}

// Max returns the largest value of the sample. It fails with
// ErrEmptyData if the sample is empty.
func (s *Sample[T]) Max() (T, error) {
	if len(s.xs) == 0 {
		var zero T
		return zero, ErrEmptyData
	}
	return slices.Max(s.xs), nil
}

// Amplitude returns the range of the sample, max - min. It fails
// with ErrEmptyData if the sample is empty.
func (s *Sample[T]) Amplitude() (T, error) {
	if len(s.xs) == 0 {
		var zero T
		return zero, ErrEmptyData
	}
	return slices.Max(s.xs) - slices.Min(s.xs), nil
}

// Variance returns the variance of the sample, or 0 if the sample is
// empty. For population data the sum of squared deviations is
// divided by N, for sample data by N-1 (Bessel's correction).
//
// A single-value sample with Population(false) divides 0 by 0 and
// returns NaN. That is the documented behavior of the N-1 divisor,
// not a guarded case.
func (s *Sample[T]) Variance() float64 {
	if len(s.xs) == 0 {
		return 0
	}
	mean := s.Mean()
	ss := s.SumBy(func(x T) float64 {
		d := float64(x) - mean
		return d * d
	})
	if s.population {
		return ss / float64(len(s.xs))
	}
	return ss / float64(len(s.xs)-1)
}

// StdDev returns the standard deviation of the sample, the square
// root of Variance.
func (s *Sample[T]) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// CoefficientOfVariation returns the standard deviation normalized
// by the mean, a dimensionless measure of relative dispersion. It is
// defined as 0 when the mean is exactly 0.
func (s *Sample[T]) CoefficientOfVariation() float64 {
	mean := s.Mean()
	if mean == 0 {
		return 0
	}
	return s.StdDev() / mean
}

// Percentile returns the pctile'th percentile of the sample using
// the quantile estimate R8, clamped to the sample's min and max.
// pctile runs from 0 to 1. It fails with ErrEmptyData if the sample
// is empty.
func (s *Sample[T]) Percentile(pctile float64) (float64, error) {
	if len(s.xs) == 0 {
		return 0, ErrEmptyData
	}
	xs := s.sorted()

	N := float64(len(xs))
	n := 1/3.0 + pctile*(N+1/3.0) // R8
	kf, frac := math.Modf(n)
	k := int(kf)
	if k <= 0 {
		return float64(xs[0]), nil
	} else if k >= len(xs) {
		return float64(xs[len(xs)-1]), nil
	}
	return float64(xs[k-1]) + frac*(float64(xs[k])-float64(xs[k-1])), nil
}
