package search

import (
	"cmp"
	"fmt"
	"math/bits"
)

// BinarySearch reports whether target occurs in the ascending slice seq
// and, if so, an index at which it occurs.
//
// Algorithm:
//  1. start = 0, end = len(seq); the window is [start, end).
//  2. While start < end:
//     mid = start + (end-start)/2
//     seq[mid] == target → return mid, true
//     seq[mid] <  target → start = mid + 1 (drop the lower half)
//     seq[mid] >  target → end = mid       (drop the upper half)
//  3. Window empty → return NotFound, false.
//
// Complexity: O(log n) time, at most MaxComparisons(len(seq)) probes; O(1) memory.
func BinarySearch[T cmp.Ordered](seq []T, target T) (int, bool) {
	start, end := 0, len(seq)
	for start < end {
		mid := int(uint(start+end) >> 1)
		switch c := cmp.Compare(seq[mid], target); {
		case c == 0:
			return mid, true
		case c < 0:
			start = mid + 1
		default:
			end = mid
		}
	}

	return NotFound, false
}

// BinarySearchFunc works like BinarySearch but orders elements with cmp,
// which returns a negative number when e sorts before target, zero on a
// match and a positive number when e sorts after target.
// It panics if cmp is nil; use Search for a checked call.
func BinarySearchFunc[E, T any](seq []E, target T, cmp func(E, T) int) (int, bool) {
	idx, found, _ := probe(seq, target, cmp, 0, len(seq), nil)

	return idx, found
}

// Search runs a binary search for target over seq, restricted and
// observed according to opts.
//
// Returns:
//   - Result with Found=false and Index=NotFound when the target is absent
//     from the window; this is not an error.
//   - ErrNilComparator, ErrOptionViolation or ErrBoundsOutOfRange on misuse.
//
// Example:
//
//	res, err := Search(seq, 42, cmp.Compare[int], WithBounds(10, 20))
func Search[E, T any](seq []E, target T, cmp func(E, T) int, opts ...Option) (Result, error) {
	if cmp == nil {
		return Result{Index: NotFound}, ErrNilComparator
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{Index: NotFound}, o.err
	}

	end := o.End
	if end < 0 {
		end = len(seq)
	}
	if end > len(seq) {
		return Result{Index: NotFound}, fmt.Errorf("%w: end %d exceeds length %d", ErrBoundsOutOfRange, end, len(seq))
	}

	idx, found, n := probe(seq, target, cmp, o.Start, end, o.OnCompare)

	return Result{Index: idx, Found: found, Comparisons: n}, nil
}

// MaxComparisons returns ceil(log2(n+1)), the most probes a binary
// search over n elements can need. It returns 0 for n <= 0.
func MaxComparisons(n int) int {
	if n <= 0 {
		return 0
	}

	return bits.Len(uint(n))
}

// probe is the shared halving loop over the window [start, end).
// onCompare may be nil. It returns the index, whether it matched and
// the number of probes made.
func probe[E, T any](seq []E, target T, cmp func(E, T) int, start, end int, onCompare func(int, int)) (int, bool, int) {
	var n int
	for start < end {
		mid := int(uint(start+end) >> 1)
		c := cmp(seq[mid], target)
		n++
		if onCompare != nil {
			onCompare(mid, c)
		}
		switch {
		case c == 0:
			return mid, true, n
		case c < 0:
			start = mid + 1
		default:
			end = mid
		}
	}

	return NotFound, false, n
}
