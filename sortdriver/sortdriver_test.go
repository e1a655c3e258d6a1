package sortdriver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldgssm/ldgssm/partition"
	"github.com/ldgssm/ldgssm/quadtree"
	"github.com/ldgssm/ldgssm/sortdriver"
	"github.com/ldgssm/ldgssm/target"
	"github.com/ldgssm/ldgssm/vecmath"
)

func TestGetStartHeightSkipsSmallGrids(t *testing.T) {
	data := []vecmath.Vector{{1}, {2}, {3}}
	tr, err := quadtree.New(3, 3, 3, data, quadtree.ParentMean)
	require.NoError(t, err)
	s := &partition.Scheduler{Tree: tr, DistanceFn: vecmath.EuclideanDistance, Kind: target.Hierarchy}
	assert.Equal(t, 0, sortdriver.GetStartHeight(s))
}

func TestSortConvergesOnAlreadySortedInput(t *testing.T) {
	data := make([]vecmath.Vector, 64)
	for i := range data {
		data[i] = vecmath.Vector{float64(i % 3)}
	}
	tr, err := quadtree.New(8, 8, 4, data, quadtree.ParentMean)
	require.NoError(t, err)
	s := &partition.Scheduler{Tree: tr, DistanceFn: vecmath.EuclideanDistance, Kind: target.Hierarchy}

	var checkpoints int
	results, err := sortdriver.Sort(context.Background(), s, 50, 1e-5, func(height, iteration int, distance float64, numExchanges int) {
		checkpoints++
	})
	require.NoError(t, err)
	assert.NotEmpty(t, results)
	assert.Greater(t, checkpoints, 0)
	require.NoError(t, tr.AssertInvariants())
}

func TestSortRespectsMaxIterations(t *testing.T) {
	data := make([]vecmath.Vector, 64)
	for i := range data {
		data[i] = vecmath.Vector{float64(64 - i)}
	}
	tr, err := quadtree.New(8, 8, 4, data, quadtree.ParentMean)
	require.NoError(t, err)
	s := &partition.Scheduler{Tree: tr, DistanceFn: vecmath.EuclideanDistance, Kind: target.Hierarchy}

	results, err := sortdriver.Sort(context.Background(), s, 1, 1e-5, nil)
	require.NoError(t, err)
	for _, r := range results {
		assert.LessOrEqual(t, r.Iterations, 1)
	}
}
