// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// describe reads newline-separated numbers from stdin and prints
// descriptive statistics about them.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/pedrolucasjsrn/go-statkit/stats"
)

var flagSample = flag.Bool("sample", false, "treat input as sample data (divide variance by N-1)")

func main() {
	flag.Parse()

	s := readInput(os.Stdin)
	s.SetPopulation(!*flagSample)
	if s.Len() == 0 {
		fmt.Fprintln(os.Stderr, "no input")
		os.Exit(1)
	}

	fmt.Printf("N %d  sum %.6g  mean %.6g", s.Len(), s.Sum(), s.Mean())
	gmean := s.GeoMean()
	if !math.IsNaN(gmean) {
		fmt.Printf("  gmean %.6g", gmean)
	}
	fmt.Printf("  std dev %.6g  variance %.6g\n", s.StdDev(), s.Variance())
	if cov := s.CoefficientOfVariation(); cov != 0 {
		fmt.Printf("coefficient of variation %.6g\n", cov)
	}

	// The sample is known to be non-empty, so the order statistics
	// cannot fail.
	median, _ := s.Median()
	mode, _ := s.Mode()
	amplitude, _ := s.Amplitude()
	fmt.Printf("median %.6g  mode %.6g  amplitude %.6g\n", median, mode, amplitude)
	fmt.Println()

	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 25, 50, 75, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		v, _ := s.Percentile(float64(p) / 100)
		fmt.Printf("%8s %.6g\n", label, v)
	}
}

func readInput(r io.Reader) *stats.Sample[float64] {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		value, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return stats.NewSample(xs...)
}
