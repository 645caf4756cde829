// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package patience implements an in-place patience sort.
//
// Sorting happens in two phases. The input is first split, in a single
// left-to-right pass, into ascending runs: each element extends the run
// whose tail (or head) is the tightest bound for it, or starts a new run.
// The runs are then merged pairwise, smallest first, alternating the
// destination between the caller's slice and one scratch slice of the
// same length. When the second run of a pair already sits at the tail of
// the destination, the merge stops as soon as the first run is used up,
// leaving the rest of the second run where it is.
//
// The sort is not stable. Elements that compare equal keep their input
// order only where a merge sees them in different runs: the run at the
// lower offset wins ties.
package patience
