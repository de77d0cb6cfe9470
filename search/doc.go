// Package search locates a target value inside a sorted slice using
// binary search, with a linear scan kept alongside as the O(n) baseline.
//
// What
//
//   - BinarySearch:     halving search over a slice of cmp.Ordered values.
//   - BinarySearchFunc: the same loop driven by a three-way comparator.
//   - Search:           configurable variant returning a Result, honouring
//     a [start, end) window (WithBounds) and a per-probe hook (WithOnCompare).
//   - LinearSearch:     front-to-back scan; the reference every binary
//     result can be checked against.
//   - MaxComparisons:   the probe budget ceil(log2(n+1)) for n elements.
//
// Why
//
//	A sorted, randomly indexable slice lets every probe discard half of
//	the remaining window. Seven items need at most three probes, a
//	million need at most twenty.
//
// Contract
//
//	The slice must be sorted ascending under the same order the comparator
//	uses. On unsorted input the answer is unspecified, but every probe
//	still stays inside the slice. When duplicates exist, the first probe
//	that matches wins; no particular occurrence is preferred.
//	"Not found" is an ordinary result (NotFound, false), never an error.
//
// Complexity (n = len(seq))
//
//   - BinarySearch*: Time O(log n), at most MaxComparisons(n) probes. Memory O(1).
//   - LinearSearch*: Time O(n). Memory O(1).
//   - MaxComparisons: O(1).
//
// Usage
//
//	clothes := []string{"belt", "blouse", "pants", "shirt", "shorts", "sock", "underwear"}
//	i, ok := search.BinarySearch(clothes, "sock") // 5, true
//
//	res, err := search.Search(clothes, "pants", strings.Compare,
//	    search.WithBounds(0, 4),
//	    search.WithOnCompare(func(index, cmp int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrOptionViolation   if an Option is invalid (negative or inverted bounds).
//   - ErrBoundsOutOfRange  if the bounds window reaches past len(seq).
//   - ErrNilComparator     if Search is given a nil comparator.
package search
