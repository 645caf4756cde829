// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patience

// mergeDisjoint merges the ascending runs src1 and src2 into sink.
// The three slices must not overlap and len(sink) must be
// len(src1)+len(src2). Ties go to src1.
func (c cmpFunc[E]) mergeDisjoint(src1, src2, sink []E) {
	if len(src1)+len(src2) != len(sink) {
		panic("patience: mergeDisjoint: sink length mismatch")
	}
	i, j, k := 0, 0, 0
	for i < len(src1) && j < len(src2) {
		if c(src2[j], src1[i]) < 0 {
			sink[k] = src2[j]
			j++
		} else {
			sink[k] = src1[i]
			i++
		}
		k++
	}
	k += copy(sink[k:], src1[i:])
	copy(sink[k:], src2[j:])
}

// mergeBlind merges the ascending run src1 with the ascending run that
// occupies sink[len(src1):], writing the result to sink. src1 must not
// overlap sink. Ties go to src1.
//
// Writes into sink never pass the next unread element of the second run,
// so once src1 is used up the remainder of the second run is already in
// its final place and is left untouched. mergeBlind returns how many
// elements were left in place that way.
func (c cmpFunc[E]) mergeBlind(src1, sink []E) (skipped int) {
	n1 := len(src1)
	if n1 > len(sink) {
		panic("patience: mergeBlind: src1 longer than sink")
	}
	src2 := sink[n1:]
	i, j, k := 0, 0, 0
	for i < n1 && j < len(src2) {
		if c(src2[j], src1[i]) < 0 {
			sink[k] = src2[j]
			j++
		} else {
			sink[k] = src1[i]
			i++
		}
		k++
	}
	if i < n1 {
		copy(sink[k:], src1[i:])
		return 0
	}
	// The write cursor has caught up with the read cursor of src2.
	if k != n1+j {
		panic("patience: internal invariant: blind merge overtook its second run")
	}
	return len(src2) - j
}
