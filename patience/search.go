// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patience

import "sort"

// search returns the smallest index i in [0, n] at which p(i) >= 0.
// p must be negative for a (possibly empty) prefix of [0, n) and
// non-negative for the remainder; otherwise the result is some index in
// [0, n] with no further meaning. If p(i) < 0 for all i, search returns n.
func search(n int, p func(i int) int) int {
	return sort.Search(n, func(i int) bool { return p(i) >= 0 })
}
