// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"time"

	"github.com/patiencesort/patience"
)

// A summary describes a set of timings.
type summary struct {
	Mean, StdDev time.Duration
	Median, P90  time.Duration
	Min, Max     time.Duration
	Rounds       int
}

// summarize returns a summary of the timings in ds.
// It panics if ds is empty. ds is not modified.
func summarize(ds []time.Duration) summary {
	if len(ds) == 0 {
		panic("summarize: no timings")
	}
	values := make([]float64, len(ds))
	for i, d := range ds {
		values[i] = float64(d)
	}
	patience.Sort(values)
	mean, stddev := meanAndStdDev(values)
	return summary{
		Mean:   time.Duration(mean),
		StdDev: time.Duration(stddev),
		Median: time.Duration(quantile(values, 0.5)),
		P90:    time.Duration(quantile(values, 0.9)),
		Min:    time.Duration(values[0]),
		Max:    time.Duration(values[len(values)-1]),
		Rounds: len(values),
	}
}

// meanAndStdDev returns the arithmetic mean and sample standard deviation
// of values; the standard deviation of a single value is 0.
func meanAndStdDev(values []float64) (float64, float64) {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	if len(values) == 1 {
		return mean, 0
	}
	squaredDiffs := 0.0
	for _, v := range values {
		diff := v - mean
		squaredDiffs += diff * diff
	}
	return mean, math.Sqrt(squaredDiffs / float64(len(values)-1))
}

// quantile returns the q-quantile of the sorted values, interpolated with
// the Hyndman and Fan "R-7" method.
func quantile(sorted []float64, q float64) float64 {
	if !(0 <= q && q <= 1) {
		panic("quantile must be contained in the interval [0, 1]")
	}
	h := float64(len(sorted)-1)*q + 1
	lo, hi := int(math.Floor(h-1)), int(math.Ceil(h-1))
	return sorted[lo] + (h-math.Floor(h))*(sorted[hi]-sorted[lo])
}
