// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank orders search results by popularity.
//
// Ranking is a stable top-down merge sort over (popularity, index) pairs.
// Results with equal popularity keep their input order, so identical
// responses always print identically. NaN popularity sorts below every
// number and compares equal to other NaNs.
package rank

import "math"

// Entry pairs a popularity score with the position of its record in the
// original result list.
type Entry struct {
	Popularity float64
	Index      int
}

// Order returns the indices of popularity sorted by descending score, ties
// in ascending index order. The result is a permutation of [0, n).
func Order(popularity []float64) []int {
	entries := make([]Entry, len(popularity))
	for i, p := range popularity {
		entries[i] = Entry{Popularity: p, Index: i}
	}
	sorted := Sort(entries)

	order := make([]int, len(sorted))
	for i, e := range sorted {
		order[i] = e.Index
	}
	return order
}

// Sort returns a copy of entries in descending popularity. The input slice
// is not modified.
func Sort(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	if len(out) <= 1 {
		return out
	}
	scratch := make([]Entry, len(out))
	mergeSort(out, scratch)
	return out
}

// mergeSort sorts s in place using scratch (same length) as merge space.
func mergeSort(s, scratch []Entry) {
	n := len(s)
	if n <= 1 {
		return
	}
	mid := n / 2
	mergeSort(s[:mid], scratch[:mid])
	mergeSort(s[mid:], scratch[mid:])

	copy(scratch, s)
	left, right := scratch[:mid], scratch[mid:]
	l, r := 0, 0
	for i := 0; i < n; i++ {
		if l < len(left) && (r >= len(right) || atLeast(left[l].Popularity, right[r].Popularity)) {
			s[i] = left[l]
			l++
		} else {
			s[i] = right[r]
			r++
		}
	}
}

// atLeast reports whether a ranks no lower than b. Taking the left element
// whenever this holds is what keeps the merge stable.
func atLeast(a, b float64) bool {
	switch {
	case math.IsNaN(b):
		return true
	case math.IsNaN(a):
		return false
	default:
		return a >= b
	}
}
