// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats_test

import (
	"fmt"

	"github.com/pedrolucasjsrn/go-statkit/stats"
)

func Example() {
	s := stats.NewSample(1.0, 2, 3, 4, 5)
	fmt.Println(s.Mean())
	fmt.Println(s.StdDev())

	binom, err := stats.NewBinomialDist(10, 0.5)
	if err != nil {
		panic(err)
	}
	fmt.Println(binom.PMF(5))
	// Output:
	// 3
	// 1.4142135623730951
	// 0.24609375
}

func ExampleSample_SetPopulation() {
	s := stats.NewSample(1.0, 2, 3, 4, 5)
	fmt.Println(s.Variance())
	fmt.Println(s.SetPopulation(false).Variance())
	// Output:
	// 2
	// 2.5
}

func ExampleDiscreteDist() {
	die, err := stats.NewDiscreteUniformDist(1, 6)
	if err != nil {
		panic(err)
	}
	for _, d := range []stats.DiscreteDist{die} {
		fmt.Println(d.PMF(3), d.Mean())
	}
	// Output:
	// 0.16666666666666666 3.5
}
