package runner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldgssm/ldgssm/partition"
	"github.com/ldgssm/ldgssm/quadtree"
	"github.com/ldgssm/ldgssm/runner"
	"github.com/ldgssm/ldgssm/target"
	"github.com/ldgssm/ldgssm/vecmath"
)

func newScheduler(t *testing.T) *partition.Scheduler {
	t.Helper()
	data := make([]vecmath.Vector, 16)
	for i := range data {
		data[i] = vecmath.Vector{float64(16 - i), float64(i)}
	}
	tr, err := quadtree.New(4, 4, 3, data, quadtree.ParentMean)
	require.NoError(t, err)
	return &partition.Scheduler{Tree: tr, DistanceFn: vecmath.EuclideanDistance, Kind: target.Hierarchy}
}

func TestRunDecaysParametersAndPreservesInvariants(t *testing.T) {
	s := newScheduler(t)
	opts := runner.Options{
		MaxIterations: 10, DistanceThreshold: 1e-4,
		IterationsChangeFactor: 1.5, DistanceChangeFactor: 0.5,
		TargetKinds: []target.Kind{target.Hierarchy}, Debug: true,
	}
	results, err := runner.Run(context.Background(), s, runner.Schedule{NumberOfPasses: 2}, opts, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.NoError(t, s.Tree.AssertInvariants())
}

func TestRunSeededRandomizeReproducible(t *testing.T) {
	s1 := newScheduler(t)
	s2 := newScheduler(t)
	opts := runner.Options{
		MaxIterations: 5, DistanceThreshold: 1e-4,
		IterationsChangeFactor: 1, DistanceChangeFactor: 1,
		RandomizeAssignment: true, Seed: 7,
		TargetKinds: []target.Kind{target.Hierarchy},
	}
	r1, err := runner.Run(context.Background(), s1, runner.Schedule{NumberOfPasses: 1}, opts, nil)
	require.NoError(t, err)
	r2, err := runner.Run(context.Background(), s2, runner.Schedule{NumberOfPasses: 1}, opts, nil)
	require.NoError(t, err)
	assert.Equal(t, r1[0].InitialHND, r2[0].InitialHND)
	assert.Equal(t, r1[0].FinalHND, r2[0].FinalHND)
}

func TestRunRejectsZeroPasses(t *testing.T) {
	s := newScheduler(t)
	_, err := runner.Run(context.Background(), s, runner.Schedule{NumberOfPasses: 0}, runner.Options{}, nil)
	assert.ErrorIs(t, err, runner.ErrNoPasses)
}

func TestRunCombineTargetsSetsSchedulerCombineKinds(t *testing.T) {
	s := newScheduler(t)
	opts := runner.Options{
		MaxIterations: 3, DistanceThreshold: 1e-4,
		IterationsChangeFactor: 1, DistanceChangeFactor: 1,
		TargetKinds: []target.Kind{target.Hierarchy, target.Neighbourhood},
	}
	_, err := runner.Run(context.Background(), s, runner.Schedule{NumberOfPasses: 1, CombineTargets: true}, opts, nil)
	require.NoError(t, err)
	assert.Equal(t, opts.TargetKinds, s.CombineKinds)
}
