package exchange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldgssm/ldgssm/exchange"
	"github.com/ldgssm/ldgssm/geometry"
	"github.com/ldgssm/ldgssm/quadtree"
	"github.com/ldgssm/ldgssm/vecmath"
)

func TestFindAndSwapBestPermutationImproves(t *testing.T) {
	// two leaves, each closer to the OTHER leaf's target than its own.
	data := []vecmath.Vector{{10}, {0}}
	tr, err := quadtree.New(1, 2, 1, data, quadtree.ParentMean)
	require.NoError(t, err)

	nodes := []geometry.CellPosition{{Height: 0, Index: 0}, {Height: 0, Index: 1}}
	targets := [][]vecmath.Vector{{{0}}, {{10}}}

	swaps, err := exchange.FindAndSwapBestPermutation(tr, nodes, targets, vecmath.EuclideanDistance)
	require.NoError(t, err)
	assert.Equal(t, 2, swaps)

	v0, _ := tr.GetValue(nodes[0])
	v1, _ := tr.GetValue(nodes[1])
	assert.Equal(t, vecmath.Vector{0}, v0)
	assert.Equal(t, vecmath.Vector{10}, v1)
}

func TestFindAndSwapBestPermutationIdentityWinsTie(t *testing.T) {
	data := []vecmath.Vector{{5}, {5}}
	tr, err := quadtree.New(1, 2, 1, data, quadtree.ParentMean)
	require.NoError(t, err)

	nodes := []geometry.CellPosition{{Height: 0, Index: 0}, {Height: 0, Index: 1}}
	targets := [][]vecmath.Vector{{{5}}, {{5}}}

	swaps, err := exchange.FindAndSwapBestPermutation(tr, nodes, targets, vecmath.EuclideanDistance)
	require.NoError(t, err)
	assert.Equal(t, 0, swaps, "a tie must keep the identity permutation")
}

func TestFindAndSwapBestPermutationNullDistanceNeverSwaps(t *testing.T) {
	data := []vecmath.Vector{{1}, {2}, {3}, {4}}
	tr, err := quadtree.New(2, 2, 1, data, quadtree.ParentMean)
	require.NoError(t, err)

	nodes := []geometry.CellPosition{{Height: 0, Index: 0}, {Height: 0, Index: 1}, {Height: 0, Index: 2}, {Height: 0, Index: 3}}
	targets := [][]vecmath.Vector{{{9}}, {{9}}, {{9}}, {{9}}}

	swaps, err := exchange.FindAndSwapBestPermutation(tr, nodes, targets, vecmath.NullDistance)
	require.NoError(t, err)
	assert.Equal(t, 0, swaps)
}

func TestFindAndSwapBestPermutationTooManyNodes(t *testing.T) {
	nodes := make([]geometry.CellPosition, 5)
	targets := make([][]vecmath.Vector, 5)
	_, err := exchange.FindAndSwapBestPermutation(nil, nodes, targets, vecmath.EuclideanDistance)
	assert.ErrorIs(t, err, exchange.ErrTooManyNodes)
}
