// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patience

import (
	"sync"

	"golang.org/x/xerrors"
)

// An Allocator provides the scratch buffer a sort merges through.
//
// Alloc returns a slice of exactly n elements or an error. Free hands the
// buffer back once the sort is done with it; its contents are zeroed
// before Free is called.
type Allocator[E any] interface {
	Alloc(n int) ([]E, error)
	Free(buf []E)
}

// HeapAllocator allocates a fresh scratch buffer for every sort.
type HeapAllocator[E any] struct {
	// Max, if positive, is the largest buffer Alloc will hand out.
	Max int
}

func (a HeapAllocator[E]) Alloc(n int) ([]E, error) {
	if err := checkLimit(n, a.Max); err != nil {
		return nil, err
	}
	return make([]E, n), nil
}

func (HeapAllocator[E]) Free([]E) {}

// PoolAllocator reuses scratch buffers between sorts.
// The zero value is ready to use. It is safe for concurrent use.
type PoolAllocator[E any] struct {
	// Max, if positive, is the largest buffer Alloc will hand out.
	Max int

	pool sync.Pool // of *[]E
}

func (a *PoolAllocator[E]) Alloc(n int) ([]E, error) {
	if err := checkLimit(n, a.Max); err != nil {
		return nil, err
	}
	if p, ok := a.pool.Get().(*[]E); ok {
		if cap(*p) >= n {
			return (*p)[:n], nil
		}
	}
	return make([]E, n), nil
}

func (a *PoolAllocator[E]) Free(buf []E) {
	buf = buf[:cap(buf)]
	a.pool.Put(&buf)
}

func checkLimit(n, max int) error {
	if max > 0 && n > max {
		return xerrors.Errorf("%d elements requested, limit is %d", n, max)
	}
	return nil
}
