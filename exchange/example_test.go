package exchange_test

import (
	"fmt"

	"github.com/ldgssm/ldgssm/exchange"
	"github.com/ldgssm/ldgssm/geometry"
	"github.com/ldgssm/ldgssm/quadtree"
	"github.com/ldgssm/ldgssm/vecmath"
)

// ExampleFindAndSwapBestPermutation swaps two leaves whose values are each
// closer to the other leaf's target than to their own.
func ExampleFindAndSwapBestPermutation() {
	data := []vecmath.Vector{{10}, {0}}
	tree, err := quadtree.New(1, 2, 1, data, quadtree.ParentMean)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	nodes := []geometry.CellPosition{{Height: 0, Index: 0}, {Height: 0, Index: 1}}
	targets := [][]vecmath.Vector{{{0}}, {{10}}}

	swaps, err := exchange.FindAndSwapBestPermutation(tree, nodes, targets, vecmath.EuclideanDistance)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(swaps)
	// Output:
	// 2
}
