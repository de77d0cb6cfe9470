package search

// LinearSearch scans seq front to back and returns the first index
// holding target. The slice need not be sorted.
//
// Complexity: O(n) time, O(1) memory.
func LinearSearch[T comparable](seq []T, target T) (int, bool) {
	for i, v := range seq {
		if v == target {
			return i, true
		}
	}

	return NotFound, false
}

// LinearSearchFunc returns the first index whose element satisfies match.
func LinearSearchFunc[E any](seq []E, match func(E) bool) (int, bool) {
	for i, v := range seq {
		if match(v) {
			return i, true
		}
	}

	return NotFound, false
}
