// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patience

import (
	"cmp"
	"context"
	"fmt"
	"math"

	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// bufTag names one of the two buffers merges alternate between.
type bufTag uint8

const (
	primary   bufTag = iota // the caller's slice
	auxiliary               // the scratch slice
)

func (b bufTag) other() bufTag { return b ^ 1 }

func (b bufTag) String() string {
	if b == primary {
		return "primary"
	}
	return "auxiliary"
}

// A span locates a sorted run: n elements at off in buffer buf.
// The live spans of a scheduler, in order, tile [0, len) with no gaps.
type span struct {
	buf bufTag
	off int
	n   int
}

func (s span) String() string {
	return fmt.Sprintf("%v[%d:%d]", s.buf, s.off, s.off+s.n)
}

// A scheduler merges runs through a pair of equal-length buffers until
// a single run remains in bufs[primary].
type scheduler[E any] struct {
	cmp   cmpFunc[E]
	bufs  [2][]E
	spans []span
	stats *Stats

	log *slog.Logger // nil unless debug logging is enabled
}

// pack moves runs into the primary buffer, shortest first, recording a
// span for each. The runs are left empty.
func (s *scheduler[E]) pack(runs []*run[E]) {
	slices.SortStableFunc(runs, func(a, b *run[E]) int {
		return cmp.Compare(a.Len(), b.Len())
	})
	s.spans = make([]span, 0, len(runs))
	off := 0
	for _, r := range runs {
		n := r.Len()
		r.moveTo(s.bufs[primary][off : off+n])
		s.spans = append(s.spans, span{buf: primary, off: off, n: n})
		off += n
	}
	if off != len(s.bufs[primary]) {
		panic(fmt.Sprintf("patience: internal invariant: runs hold %d of %d elements", off, len(s.bufs[primary])))
	}
}

// pick returns i such that spans i and i+1 should be merged next.
//
// It takes the first adjacent pair whose combined length does not exceed
// the combined length of the two shortest spans. Such a pair need not
// exist (lengths 1, 5, 1), in which case the lightest adjacent pair is
// used instead.
func (s *scheduler[E]) pick() int {
	first, second := math.MaxInt, math.MaxInt
	for _, sp := range s.spans {
		switch {
		case sp.n < first:
			first, second = sp.n, first
		case sp.n < second:
			second = sp.n
		}
	}
	limit := first + second
	best, bestN := 0, math.MaxInt
	for i := 0; i+1 < len(s.spans); i++ {
		n := s.spans[i].n + s.spans[i+1].n
		if n <= limit {
			return i
		}
		if n < bestN {
			best, bestN = i, n
		}
	}
	return best
}

// mergeAt merges spans i and i+1 into the buffer span i is not in,
// at span i's offset, and replaces both with the result.
func (s *scheduler[E]) mergeAt(i int) {
	cur, next := s.spans[i], s.spans[i+1]
	s.checkPair(cur, next)

	dst := cur.buf.other()
	n := cur.n + next.n
	src1 := s.bufs[cur.buf][cur.off : cur.off+cur.n]
	sink := s.bufs[dst][cur.off : cur.off+n]

	blind := next.buf == dst
	skipped := 0
	if blind {
		skipped = s.cmp.mergeBlind(src1, sink)
		s.stats.BlindMerges++
	} else {
		src2 := s.bufs[next.buf][next.off : next.off+next.n]
		s.cmp.mergeDisjoint(src1, src2, sink)
	}
	s.stats.Merges++
	s.stats.Moved += n - skipped
	s.stats.Skipped += skipped

	merged := span{buf: dst, off: cur.off, n: n}
	if s.log != nil {
		s.log.LogAttrs(context.Background(), slog.LevelDebug, "merge",
			slog.String("first", cur.String()),
			slog.String("second", next.String()),
			slog.String("into", merged.String()),
			slog.Bool("blind", blind),
			slog.Int("skipped", skipped),
			slog.Int("live", len(s.spans)-1))
	}
	s.spans[i] = merged
	s.spans = slices.Delete(s.spans, i+1, i+2)
}

// checkPair panics unless cur and next can be merged in place: both
// non-empty, adjacent, and inside the buffers.
func (s *scheduler[E]) checkPair(cur, next span) {
	if cur.n <= 0 || next.n <= 0 || cur.off < 0 ||
		cur.off+cur.n != next.off || next.off+next.n > len(s.bufs[primary]) {
		panic(fmt.Sprintf("patience: internal invariant: cannot merge %v with %v", cur, next))
	}
}

// mergeAll merges until one span remains and leaves the result in the
// primary buffer.
func (s *scheduler[E]) mergeAll() {
	for len(s.spans) > 1 {
		s.mergeAt(s.pick())
	}
	last := s.spans[0]
	if last.off != 0 || last.n != len(s.bufs[primary]) {
		panic(fmt.Sprintf("patience: internal invariant: final run is %v", last))
	}
	if last.buf == auxiliary {
		copy(s.bufs[primary], s.bufs[auxiliary])
		s.spans[0].buf = primary
		s.stats.CopiedBack = true
		if s.log != nil {
			s.log.LogAttrs(context.Background(), slog.LevelDebug, "copy back", slog.Int("len", last.n))
		}
	}
}
