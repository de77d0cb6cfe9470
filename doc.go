// Package bigo is the companion code for a short lesson on Big O
// time complexity: how the work an algorithm does grows with its input.
//
// Growth classes used in the lesson:
//
//	O(1)      constant     — same cost for 7 items or 7 million
//	O(log n)  logarithmic  — every step halves what is left
//	O(n)      linear       — every item is looked at once
//	O(n²)     quadratic    — every item is paired with every other
//
// The runnable part lives in one subpackage:
//
//	search/ — BinarySearch (O(log n)) over sorted slices, LinearSearch (O(n))
//	          as the baseline, and MaxComparisons, the O(1) probe budget.
//
// Quick example:
//
//	clothes := []string{"belt", "blouse", "pants", "shirt", "shorts", "sock", "underwear"}
//	i, ok := search.BinarySearch(clothes, "sock") // 5, true: found in 2 probes
//
//	go get github.com/katalvlaran/bigo/search
package bigo
