// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patience

import (
	"cmp"
	"context"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

// ErrScratch is reported when the scratch buffer cannot be obtained.
var ErrScratch = xerrors.New("patience: scratch allocation failed")

// A ScratchError records a failure to obtain the scratch buffer.
// It matches [ErrScratch] under errors.Is.
type ScratchError struct {
	Len int   // elements requested
	Err error // allocator error, or why the buffer was rejected
}

func (e *ScratchError) Error() string {
	return fmt.Sprintf("patience: scratch allocation of %d elements failed: %v", e.Len, e.Err)
}

func (e *ScratchError) Unwrap() error { return e.Err }

func (e *ScratchError) Is(target error) bool { return target == ErrScratch }

type cmpFunc[E any] func(a, b E) int

// Sort sorts x in ascending order.
// When sorting floating-point numbers, NaNs are ordered before other values.
func Sort[E constraints.Ordered](x []E) {
	SortFunc(x, cmp.Compare[E])
}

// SortFunc sorts x in ascending order as determined by the cmp function.
// cmp(a, b) should return a negative number when a < b, a positive number
// when a > b and zero when a == b. cmp must be a strict weak ordering;
// otherwise the resulting order is unspecified.
//
// SortFunc allocates one scratch slice of len(x) elements.
func SortFunc[E any](x []E, cmp func(a, b E) int) {
	if len(x) < 2 {
		return
	}
	var st Stats
	sortFunc(x, make([]E, len(x)), cmp, Bidirectional, &st, nil)
}

// IsSorted reports whether x is sorted in ascending order.
func IsSorted[E constraints.Ordered](x []E) bool {
	return IsSortedFunc(x, cmp.Compare[E])
}

// IsSortedFunc reports whether x is sorted in ascending order, with cmp as
// the comparison function as defined by [SortFunc].
func IsSortedFunc[E any](x []E, cmp func(a, b E) int) bool {
	for i := len(x) - 1; i > 0; i-- {
		if cmp(x[i], x[i-1]) < 0 {
			return false
		}
	}
	return true
}

// A Sorter sorts slices of E with optional control over run building,
// scratch allocation and logging. A Sorter holds no per-call state and
// may be used by several goroutines sorting different slices.
type Sorter[E any] struct {
	// Cmp compares elements as described for [SortFunc]. It is required.
	Cmp func(a, b E) int

	// Growth selects how runs are built. The zero value is Bidirectional.
	Growth Growth

	// Alloc provides the scratch buffer. If nil, HeapAllocator is used.
	Alloc Allocator[E]

	// Logger, if non-nil, receives the merge plan at debug level.
	Logger *slog.Logger
}

// Sort sorts x in place and reports the work done.
//
// The only error is failure to obtain the scratch buffer, reported as a
// *ScratchError before any element of x has been touched.
func (s *Sorter[E]) Sort(x []E) (Stats, error) {
	st := Stats{Len: len(x)}
	if len(x) < 2 {
		return st, nil
	}
	if s.Cmp == nil {
		panic("patience: Sorter.Cmp is nil")
	}
	alloc := s.Alloc
	if alloc == nil {
		alloc = HeapAllocator[E]{}
	}
	aux, err := alloc.Alloc(len(x))
	if err != nil {
		return st, &ScratchError{Len: len(x), Err: err}
	}
	if len(aux) != len(x) {
		alloc.Free(aux)
		return st, &ScratchError{Len: len(x), Err: xerrors.Errorf("allocator returned %d elements", len(aux))}
	}
	sortFunc(x, aux, s.Cmp, s.Growth, &st, s.Logger)
	clear(aux)
	alloc.Free(aux)
	return st, nil
}

// sortFunc sorts x using aux, which has the same length, as scratch.
func sortFunc[E any](x, aux []E, c cmpFunc[E], g Growth, st *Stats, log *slog.Logger) {
	ctx := context.Background()
	if log != nil && !log.Enabled(ctx, slog.LevelDebug) {
		log = nil
	}
	runs := c.buildRuns(x, g)
	st.Runs = len(runs)
	if log != nil {
		log.LogAttrs(ctx, slog.LevelDebug, "runs built",
			slog.Int("len", len(x)),
			slog.Int("runs", len(runs)),
			slog.String("growth", g.String()))
	}
	s := &scheduler[E]{
		cmp:   c,
		bufs:  [2][]E{primary: x, auxiliary: aux},
		stats: st,
		log:   log,
	}
	s.pack(runs)
	s.mergeAll()
}
