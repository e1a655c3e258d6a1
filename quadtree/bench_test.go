package quadtree_test

import (
	"context"
	"testing"

	"github.com/ldgssm/ldgssm/quadtree"
	"github.com/ldgssm/ldgssm/vecmath"
)

// BenchmarkComputeAggregates64x64 measures bottom-up aggregation over a
// 64x64 leaf grid (depth 7), the per-iteration cost the sort driver pays
// once per scheduler invocation.
func BenchmarkComputeAggregates64x64(b *testing.B) {
	const rows, cols = 64, 64
	data := make([]vecmath.Vector, rows*cols)
	for i := range data {
		data[i] = vecmath.Vector{float64(i), float64(i % 7), float64(i % 13)}
	}
	tree, err := quadtree.New(rows, cols, 7, data, quadtree.ParentMean)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tree.ComputeAggregates(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
