// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates seeded integer inputs with characteristic
// orderings, for exercising and measuring sorts.
package shape

import (
	"math"
	"math/rand"

	"golang.org/x/xerrors"
)

// A Shape is an ordering pattern for generated input.
type Shape int

const (
	Random   Shape = iota // uniform in [0, n)
	Sorted                // 0, 1, ..., n-1
	Reversed              // n, n-1, ..., 1
	Mixed                 // a sorted third, a random third, a reversed third
	Sawtooth              // ascending teeth of about sqrt(n) elements
	Equal                 // a single repeated value
)

var names = [...]string{
	Random:   "random",
	Sorted:   "sorted",
	Reversed: "reversed",
	Mixed:    "mixed",
	Sawtooth: "sawtooth",
	Equal:    "equal",
}

func (s Shape) String() string {
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Shape(?)"
}

// All returns every shape, in declaration order.
func All() []Shape {
	all := make([]Shape, len(names))
	for i := range all {
		all[i] = Shape(i)
	}
	return all
}

// Parse returns the shape with the given name.
func Parse(name string) (Shape, error) {
	for i, n := range names {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, xerrors.Errorf("unknown shape %q", name)
}

// Make returns n integers of the given shape. Equal seeds give equal output.
func Make(n int, s Shape, seed int64) []int {
	ints := make([]int, n)
	Fill(ints, s, seed)
	return ints
}

// Fill overwrites ints with values of the given shape.
func Fill(ints []int, s Shape, seed int64) {
	r := rand.New(rand.NewSource(seed))
	switch s {
	case Random:
		fillRandom(ints, r)
	case Sorted:
		fillSorted(ints)
	case Reversed:
		fillReversed(ints)
	case Mixed:
		n := len(ints)
		m := n / 3
		fillSorted(ints[:m])
		fillRandom(ints[m:n-m], r)
		fillReversed(ints[n-m:])
	case Sawtooth:
		tooth := int(math.Sqrt(float64(len(ints)))) + 1
		for i := range ints {
			ints[i] = i % tooth
		}
	case Equal:
		for i := range ints {
			ints[i] = 42
		}
	default:
		panic("shape: unknown shape")
	}
}

func fillRandom(ints []int, r *rand.Rand) {
	n := len(ints)
	for i := range ints {
		ints[i] = r.Intn(n)
	}
}

func fillSorted(ints []int) {
	for i := range ints {
		ints[i] = i
	}
}

func fillReversed(ints []int) {
	n := len(ints)
	for i := range ints {
		ints[i] = n - i
	}
}
