// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patience

// Stats describes the work done by one call to [Sorter.Sort].
type Stats struct {
	Len         int  // number of elements sorted
	Runs        int  // ascending runs found before merging
	Merges      int  // pairwise merges performed
	BlindMerges int  // merges whose second run already sat in the destination
	Moved       int  // elements written by merges
	Skipped     int  // elements blind merges left in place
	CopiedBack  bool // result was copied from the scratch buffer
}
