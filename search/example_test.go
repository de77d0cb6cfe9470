package search_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bigo/search"
)

// ExampleBinarySearch finds a sock in a sorted laundry pile.
func ExampleBinarySearch() {
	clothes := []string{"belt", "blouse", "pants", "shirt", "shorts", "sock", "underwear"}

	i, ok := search.BinarySearch(clothes, "sock")
	fmt.Println(i, ok)

	noSocks := []string{"belt", "blouse", "dress", "pants", "shirt", "shorts", "underwear"}
	i, ok = search.BinarySearch(noSocks, "sock")
	fmt.Println(i, ok)
	// Output:
	// 5 true
	// -1 false
}

// ExampleSearch traces each probe while halving the window.
func ExampleSearch() {
	clothes := []string{"belt", "blouse", "pants", "shirt", "shorts", "sock", "underwear"}

	res, err := search.Search(clothes, "pants", strings.Compare,
		search.WithOnCompare(func(index, cmp int) {
			fmt.Printf("probe %d %s %d\n", index, clothes[index], cmp)
		}),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("index=%d found=%v comparisons=%d\n", res.Index, res.Found, res.Comparisons)
	// Output:
	// probe 3 shirt 1
	// probe 1 blouse -1
	// probe 2 pants 0
	// index=2 found=true comparisons=3
}

// ExampleMaxComparisons shows how slowly the probe budget grows.
func ExampleMaxComparisons() {
	for _, n := range []int{0, 7, 1_000_000} {
		fmt.Printf("n=%d max=%d\n", n, search.MaxComparisons(n))
	}
	// Output:
	// n=0 max=0
	// n=7 max=3
	// n=1000000 max=20
}
