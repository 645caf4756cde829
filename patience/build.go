// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patience

import (
	"math"
	"strconv"
)

// Growth selects the ends at which the run builder may extend a run.
type Growth int

const (
	// Bidirectional extends runs at the tail or, failing that, at the head.
	Bidirectional Growth = iota
	// TailOnly only appends to tails, as classic patience piles do.
	TailOnly
)

func (g Growth) String() string {
	switch g {
	case Bidirectional:
		return "bidirectional"
	case TailOnly:
		return "tail-only"
	}
	return "Growth(" + strconv.Itoa(int(g)) + ")"
}

// buildRuns moves every element of x, in order, into ascending runs.
//
// Runs are kept with tails strictly descending and heads strictly
// ascending. An element goes to the run with the largest tail not above
// it; otherwise (Bidirectional only) to the run with the smallest head
// not below it; otherwise it starts a new run at the end. Each placement
// preserves both orderings, which is what makes the binary searches valid.
func (c cmpFunc[E]) buildRuns(x []E, g Growth) []*run[E] {
	runs := make([]*run[E], 0, int(math.Sqrt(float64(len(x))))+1)
	for i := range x {
		e := x[i]
		k := search(len(runs), func(j int) int { return c(e, runs[j].tail()) })
		if k < len(runs) {
			runs[k].pushBack(e)
			continue
		}
		if g != TailOnly {
			k = search(len(runs), func(j int) int { return c(runs[j].head(), e) })
			if k < len(runs) {
				runs[k].pushFront(e)
				continue
			}
		}
		runs = append(runs, newRun(e))
	}
	return runs
}
