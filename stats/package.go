// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats provides descriptive statistics over samples of any numeric
// type and exact discrete probability distributions.
package stats // import "github.com/pedrolucasjsrn/go-statkit/stats"

import (
	"errors"
	"math"
)

var nan = math.NaN()

var (
	// ErrEmptyData is returned by statistics that are undefined
	// on an empty sample.
	ErrEmptyData = errors.New("sample has no values")

	// ErrInvalidArgument is returned when a distribution
	// parameter violates its domain constraint.
	ErrInvalidArgument = errors.New("invalid argument")
)
