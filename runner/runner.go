package runner

import (
	"context"
	"math"

	"github.com/ldgssm/ldgssm/hnd"
	"github.com/ldgssm/ldgssm/partition"
	"github.com/ldgssm/ldgssm/sortdriver"
)

// Checkpoint is invoked after every iteration of every pass, with the
// 0-based pass index alongside sortdriver's own per-iteration arguments.
type Checkpoint func(pass, height, iteration int, distance float64, numExchanges int)

// Run applies schedule to scheduler.Tree using opts, calling checkpoint (if
// non-nil) after every iteration of every pass. It asserts the tree's
// invariants before and after the whole schedule when opts.Debug is set.
func Run(ctx context.Context, scheduler *partition.Scheduler, schedule Schedule, opts Options, checkpoint Checkpoint) ([]PassResult, error) {
	if schedule.NumberOfPasses <= 0 {
		return nil, ErrNoPasses
	}
	if opts.Debug {
		if err := scheduler.Tree.AssertInvariants(); err != nil {
			return nil, err
		}
	}

	if opts.RandomizeAssignment {
		scheduler.Tree.RandomizeAssignment(opts.Seed)
	}

	maxIterations := opts.MaxIterations
	threshold := opts.DistanceThreshold

	var passResults []PassResult
	for pass := 0; pass < schedule.NumberOfPasses; pass++ {
		select {
		case <-ctx.Done():
			return passResults, ctx.Err()
		default:
		}

		initialHND, err := hnd.Compute(ctx, scheduler.Tree, 0, scheduler.DistanceFn)
		if err != nil {
			return passResults, err
		}

		if !opts.SSMMode {
			if schedule.CombineTargets {
				scheduler.CombineKinds = opts.TargetKinds
			} else {
				scheduler.Kind = targetKindForPass(opts.TargetKinds, pass)
			}
		}

		passIdx := pass
		heightResults, err := sortdriver.Sort(ctx, scheduler, maxIterations, threshold,
			func(height, iteration int, distance float64, numExchanges int) {
				if checkpoint != nil {
					checkpoint(passIdx, height, iteration, distance, numExchanges)
				}
			})
		if err != nil {
			return passResults, err
		}

		finalHND, err := hnd.Compute(ctx, scheduler.Tree, 0, scheduler.DistanceFn)
		if err != nil {
			return passResults, err
		}

		passResults = append(passResults, PassResult{
			Pass: pass, HeightResults: heightResults,
			InitialHND: initialHND, FinalHND: finalHND,
		})

		threshold *= opts.DistanceChangeFactor
		maxIterations = int(math.Ceil(float64(maxIterations) * opts.IterationsChangeFactor))
	}

	if opts.Debug {
		if err := scheduler.Tree.AssertInvariants(); err != nil {
			return passResults, err
		}
	}
	return passResults, nil
}
