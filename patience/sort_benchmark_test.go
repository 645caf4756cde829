// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patience

import (
	"sort"
	"testing"

	"github.com/patiencesort/internal/shape"
	"golang.org/x/exp/slices"
)

// These benchmarks compare patience sort with sort.Ints and slices.Sort
// over inputs of different shapes.

const N = 100_000

func benchmarkShapes(b *testing.B, sortInts func([]int)) {
	for _, s := range shape.All() {
		b.Run(s.String(), func(b *testing.B) {
			ints := make([]int, N)
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				shape.Fill(ints, s, 42)
				b.StartTimer()
				sortInts(ints)
			}
		})
	}
}

func BenchmarkSortInts(b *testing.B) {
	benchmarkShapes(b, sort.Ints)
}

func BenchmarkSlicesSortInts(b *testing.B) {
	benchmarkShapes(b, slices.Sort[[]int])
}

func BenchmarkPatienceSortInts(b *testing.B) {
	benchmarkShapes(b, Sort[int])
}

func BenchmarkPatienceSortIntsPooled(b *testing.B) {
	sorter := Sorter[int]{Cmp: compareInts, Alloc: new(PoolAllocator[int])}
	benchmarkShapes(b, func(x []int) {
		if _, err := sorter.Sort(x); err != nil {
			b.Fatal(err)
		}
	})
}

func BenchmarkPatienceSortTailOnly(b *testing.B) {
	sorter := Sorter[int]{Cmp: compareInts, Growth: TailOnly}
	benchmarkShapes(b, func(x []int) {
		if _, err := sorter.Sort(x); err != nil {
			b.Fatal(err)
		}
	})
}

type myStruct struct {
	a, b, c, d string
	n          int
}

func makeRandomStructs(n int) []*myStruct {
	ints := shape.Make(n, shape.Random, 42)
	structs := make([]*myStruct, n)
	for i := range structs {
		structs[i] = &myStruct{n: ints[i]}
	}
	return structs
}

func BenchmarkSortFuncStructs(b *testing.B) {
	byN := func(a, b *myStruct) int { return compareInts(a.n, b.n) }
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		structs := makeRandomStructs(N)
		b.StartTimer()
		SortFunc(structs, byN)
	}
}
