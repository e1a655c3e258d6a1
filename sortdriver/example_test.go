package sortdriver_test

import (
	"context"
	"fmt"

	"github.com/ldgssm/ldgssm/partition"
	"github.com/ldgssm/ldgssm/quadtree"
	"github.com/ldgssm/ldgssm/sortdriver"
	"github.com/ldgssm/ldgssm/target"
	"github.com/ldgssm/ldgssm/vecmath"
)

// ExampleSort descends an already uniform 8x8 grid, which should
// terminate every height's inner loop immediately with zero exchanges.
func ExampleSort() {
	data := make([]vecmath.Vector, 64)
	for i := range data {
		data[i] = vecmath.Vector{1}
	}
	tree, err := quadtree.New(8, 8, 4, data, quadtree.ParentMean)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s := &partition.Scheduler{Tree: tree, DistanceFn: vecmath.EuclideanDistance, Kind: target.Hierarchy}
	results, err := sortdriver.Sort(context.Background(), s, 10, 0.01, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(results[len(results)-1].Reason)
	// Output:
	// no-exchanges
}
