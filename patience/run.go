// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patience

import "github.com/gammazero/deque"

// A run is an ascending sequence that can grow at both ends.
type run[E any] struct {
	q *deque.Deque[E]
}

// runCap is the initial and minimum capacity of a run. Most runs stay
// short, and the worst case has one run per element.
const runCap = 1

func newRun[E any](e E) *run[E] {
	r := &run[E]{q: deque.New[E](runCap, runCap)}
	r.q.PushBack(e)
	return r
}

func (r *run[E]) Len() int { return r.q.Len() }

func (r *run[E]) head() E { return r.q.Front() }

func (r *run[E]) tail() E { return r.q.Back() }

func (r *run[E]) pushFront(e E) { r.q.PushFront(e) }

func (r *run[E]) pushBack(e E) { r.q.PushBack(e) }

// moveTo moves the run, head first, into dst and leaves the run empty.
// len(dst) must equal r.Len().
func (r *run[E]) moveTo(dst []E) {
	if len(dst) != r.q.Len() {
		panic("patience: moveTo: destination length mismatch")
	}
	for i := range dst {
		dst[i] = r.q.PopFront()
	}
}
