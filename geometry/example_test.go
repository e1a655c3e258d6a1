package geometry_test

import (
	"fmt"

	"github.com/ldgssm/ldgssm/geometry"
)

// ExampleBuildBoundsCache builds the per-height bounds cache for a 4x4 leaf
// grid and prints each height's flat offset range and dimensions.
func ExampleBuildBoundsCache() {
	bounds, err := geometry.BuildBoundsCache(4, 4, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for h, b := range bounds {
		fmt.Printf("height %d: [%d,%d) %dx%d\n", h, b.Start, b.End, b.Dims.Rows, b.Dims.Cols)
	}
	// Output:
	// height 0: [0,16) 4x4
	// height 1: [16,20) 2x2
	// height 2: [20,21) 1x1
}
