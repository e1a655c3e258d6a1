package hnd_test

import (
	"context"
	"testing"

	"github.com/ldgssm/ldgssm/hnd"
	"github.com/ldgssm/ldgssm/quadtree"
	"github.com/ldgssm/ldgssm/vecmath"
)

// BenchmarkCompute64x64 measures one HND evaluation over a 64x64 leaf
// grid, the cost the sort driver pays once per inner-loop iteration.
func BenchmarkCompute64x64(b *testing.B) {
	const rows, cols = 64, 64
	data := make([]vecmath.Vector, rows*cols)
	for i := range data {
		data[i] = vecmath.Vector{float64(i), float64(i % 5), float64(i % 11)}
	}
	tree, err := quadtree.New(rows, cols, 7, data, quadtree.ParentMean)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hnd.Compute(context.Background(), tree, 0, vecmath.EuclideanDistance); err != nil {
			b.Fatal(err)
		}
	}
}
