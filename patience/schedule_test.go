// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patience

import (
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
)

func spansOf(lens ...int) []span {
	var spans []span
	off := 0
	for _, n := range lens {
		spans = append(spans, span{buf: primary, off: off, n: n})
		off += n
	}
	return spans
}

func TestPick(t *testing.T) {
	tests := []struct {
		lens []int
		want int
	}{
		{[]int{1, 1, 2, 3}, 0},
		{[]int{3, 1, 1}, 1},
		{[]int{2, 2}, 0},
		{[]int{4, 1, 9, 1, 3}, 3}, // limit 2 is never met; 1+3 is lightest
		{[]int{1, 5, 1}, 0},       // limit 2 is never met; tie goes to the first
		{[]int{5, 2, 3, 1, 9}, 2},
	}
	for _, tt := range tests {
		s := &scheduler[int]{spans: spansOf(tt.lens...)}
		if got := s.pick(); got != tt.want {
			t.Errorf("pick(%v) = %d, want %d", tt.lens, got, tt.want)
		}
	}
}

// checkTiling verifies that spans cover [0, n) in order and that each
// holds an ascending run.
func checkTiling(t *testing.T, s *scheduler[int]) {
	t.Helper()
	off := 0
	for i, sp := range s.spans {
		if sp.off != off || sp.n <= 0 {
			t.Fatalf("span %d is %v, want a non-empty span at %d", i, sp, off)
		}
		if r := s.bufs[sp.buf][sp.off : sp.off+sp.n]; !IsSorted(r) {
			t.Fatalf("span %d (%v) not ascending: %v", i, sp, r)
		}
		off += sp.n
	}
	if off != len(s.bufs[primary]) {
		t.Fatalf("spans cover %d of %d elements", off, len(s.bufs[primary]))
	}
}

func TestSchedulerTiling(t *testing.T) {
	for _, g := range []Growth{Bidirectional, TailOnly} {
		t.Run(g.String(), func(t *testing.T) {
			f := func(raw []int8) bool {
				x := make([]int, len(raw))
				for i, v := range raw {
					x[i] = int(v % 24)
				}
				if len(x) == 0 {
					return true
				}
				want := append([]int(nil), x...)
				Sort(want)

				var st Stats
				s := &scheduler[int]{
					cmp:   intCmp,
					bufs:  [2][]int{x, make([]int, len(x))},
					stats: &st,
				}
				runs := intCmp.buildRuns(x, g)
				nruns := len(runs)
				s.pack(runs)
				checkTiling(t, s)
				for len(s.spans) > 1 {
					s.mergeAt(s.pick())
					checkTiling(t, s)
				}
				s.mergeAll()
				return cmp.Equal(want, x) && st.Merges == nruns-1
			}
			if err := quick.Check(f, &quick.Config{MaxCount: 300}); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestPackShortestFirst(t *testing.T) {
	x := []int{3, 5, 4, 2, 1, 7, 6, 8, 9, 10}
	s := &scheduler[int]{cmp: intCmp, bufs: [2][]int{x, make([]int, len(x))}, stats: new(Stats)}
	s.pack(intCmp.buildRuns(x, Bidirectional))
	if diff := cmp.Diff([]int{4, 6, 1, 2, 3, 5, 7, 8, 9, 10}, x); diff != "" {
		t.Errorf("packed primary mismatch (-want +got):\n%s", diff)
	}
	want := []span{{primary, 0, 2}, {primary, 2, 8}}
	if diff := cmp.Diff(want, s.spans, cmp.AllowUnexported(span{})); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckPairPanics(t *testing.T) {
	s := &scheduler[int]{bufs: [2][]int{make([]int, 4), make([]int, 4)}}
	bad := [][2]span{
		{{primary, 0, 1}, {primary, 2, 2}},   // gap
		{{primary, 0, 2}, {auxiliary, 1, 2}}, // overlap
		{{primary, 0, 0}, {primary, 0, 2}},   // empty
		{{primary, 0, 2}, {primary, 2, 3}},   // past the end
	}
	for _, p := range bad {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("checkPair(%v, %v) did not panic", p[0], p[1])
				}
			}()
			s.checkPair(p[0], p[1])
		}()
	}
	s.checkPair(span{primary, 0, 2}, span{auxiliary, 2, 2})
}

func TestSpanString(t *testing.T) {
	if got, want := (span{auxiliary, 3, 4}).String(), "auxiliary[3:7]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
