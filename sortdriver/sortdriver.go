package sortdriver

import (
	"context"
	"math"

	"github.com/ldgssm/ldgssm/hnd"
	"github.com/ldgssm/ldgssm/partition"
)

// GetStartHeight returns the largest height, below the root, whose grid is
// at least 4 cells wide and 4 cells tall -- the height the inner loop
// begins its descent from. Heights smaller than 4x4 have too few cells for
// the 2x2-candidate partition scheduler to do useful work.
func GetStartHeight(scheduler *partition.Scheduler) int {
	depth := scheduler.Tree.Depth()
	height := depth - 1
	for height > 0 {
		b, ok := scheduler.Tree.Bounds(height)
		if !ok {
			break
		}
		if b.Dims.Rows >= 4 && b.Dims.Cols >= 4 {
			break
		}
		height--
	}
	return height
}

func distanceHasChanged(oldDistance, newDistance, threshold float64) bool {
	if oldDistance == 0 {
		return newDistance != 0
	}
	return math.Abs(oldDistance-newDistance)/oldDistance > threshold
}

// Sort descends from GetStartHeight down to height 1, running each
// height's inner do-while loop until it produces zero exchanges, its HND
// stops changing by more than distanceThreshold, or it exhausts
// maxIterations. checkpoint, if non-nil, is called once per iteration.
func Sort(ctx context.Context, scheduler *partition.Scheduler, maxIterations int, distanceThreshold float64, checkpoint Checkpoint) ([]HeightResult, error) {
	var results []HeightResult

	for height := GetStartHeight(scheduler); height > 0; height-- {
		distance, err := hnd.Compute(ctx, scheduler.Tree, 0, scheduler.DistanceFn)
		if err != nil {
			return results, err
		}

		iterations := 0
		reason := MaxIterations
		for {
			numExchanges := 0

			n, err := scheduler.OptimizePartitions(ctx, height, 0, false)
			if err != nil {
				return results, err
			}
			numExchanges += n

			n, err = scheduler.OptimizePartitions(ctx, height, 0, true)
			if err != nil {
				return results, err
			}
			numExchanges += n

			if height > 1 {
				n, err = scheduler.OptimizePartitions(ctx, height, height-1, false)
				if err != nil {
					return results, err
				}
				numExchanges += n

				n, err = scheduler.OptimizePartitions(ctx, height, height-1, true)
				if err != nil {
					return results, err
				}
				numExchanges += n
			}

			newDistance, err := hnd.Compute(ctx, scheduler.Tree, 0, scheduler.DistanceFn)
			if err != nil {
				return results, err
			}
			iterations++
			if checkpoint != nil {
				checkpoint(height, iterations, newDistance, numExchanges)
			}

			changed := distanceHasChanged(distance, newDistance, distanceThreshold)
			distance = newDistance

			if iterations >= maxIterations {
				reason = MaxIterations
				break
			}
			if numExchanges == 0 {
				reason = NoExchanges
				break
			}
			if !changed {
				reason = BelowThreshold
				break
			}
		}

		results = append(results, HeightResult{Height: height, Iterations: iterations, Reason: reason, Distance: distance})
	}
	return results, nil
}
