package parallelutil_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldgssm/ldgssm/parallelutil"
)

func TestForEachRunsAllIndices(t *testing.T) {
	var count int64
	err := parallelutil.ForEach(context.Background(), 100, func(i int) error {
		atomic.AddInt64(&count, 1)
		return nil
	})
	require.NoError(t, err)
	assert.EqualValues(t, 100, count)
}

func TestForEachPropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	err := parallelutil.ForEach(context.Background(), 10, func(i int) error {
		if i == 5 {
			return sentinel
		}
		return nil
	})
	assert.ErrorIs(t, err, sentinel)
}

func TestForEachReduceSumsToN(t *testing.T) {
	sum, err := parallelutil.ForEachReduce(context.Background(), 10, 0,
		func(i int) (int, error) { return 1, nil },
		func(a, b int) int { return a + b },
	)
	require.NoError(t, err)
	assert.Equal(t, 10, sum)
}

func TestForEachReduceZeroN(t *testing.T) {
	sum, err := parallelutil.ForEachReduce(context.Background(), 0, 42,
		func(i int) (int, error) { return 1, nil },
		func(a, b int) int { return a + b },
	)
	require.NoError(t, err)
	assert.Equal(t, 42, sum)
}
