package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"os"

	"github.com/ldgssm/ldgssm/assignio"
	"github.com/ldgssm/ldgssm/hnd"
	"github.com/ldgssm/ldgssm/imaging"
	"github.com/ldgssm/ldgssm/ioconfig"
	"github.com/ldgssm/ldgssm/ldglog"
	"github.com/ldgssm/ldgssm/metrics"
	"github.com/ldgssm/ldgssm/parallelutil"
	"github.com/ldgssm/ldgssm/partition"
	"github.com/ldgssm/ldgssm/quadtree"
	"github.com/ldgssm/ldgssm/rawdata"
	"github.com/ldgssm/ldgssm/runner"
	"github.com/ldgssm/ldgssm/target"
	"github.com/ldgssm/ldgssm/vecmath"

	"github.com/prometheus/client_golang/prometheus"
)

// runFlags mirrors spec.md section 6's CLI flag surface, plus the
// supplemented ssm_mode and passes_per_checkpoint flags original_source/
// carries (input_args.hpp).
type runFlags struct {
	config                  string
	input                   string
	output                  string
	cores                   int
	passes                  int
	maxIterations           int
	passesPerCheckpoint     int
	iterationsPerCheckpoint int
	minDistanceChange       float64
	distanceChangeFactor    float64
	iterationsChangeFactor  float64
	seed                    int64
	partitionSwaps          bool
	randomize               bool
	parentType              int
	distanceFunction        int
	ssmMode                 bool
	debug                   bool
	rows                    int
	columns                 int
	logOnly                 bool
	export                  bool
	visualizationConfig     string
	targets                 string
	combineTargets          bool
	metricsAddr             string
}

func newRunCmd() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load or generate a grid of data and sort it",
		RunE: func(cmd *cobra.Command, args []string) error {
			bindEnv(cmd)
			return runSort(cmd.Context(), f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "input configuration JSON (see ioconfig.InputConfiguration)")
	fl.StringVar(&f.input, "input", "", "prior assignment file to resume from")
	fl.StringVar(&f.output, "output", "out", "output directory")
	fl.IntVar(&f.cores, "cores", 0, "parallel-region width (0 = GOMAXPROCS)")
	fl.IntVar(&f.passes, "passes", 1, "number of passes")
	fl.IntVar(&f.maxIterations, "max_iterations", 50, "per-height iteration budget")
	fl.IntVar(&f.passesPerCheckpoint, "passes_per_checkpoint", 1, "passes between checkpoint log rows")
	fl.IntVar(&f.iterationsPerCheckpoint, "iterations_per_checkpoint", 1, "iterations between checkpoint log rows")
	fl.Float64Var(&f.minDistanceChange, "min_distance_change", 1e-6, "relative HND change threshold")
	fl.Float64Var(&f.distanceChangeFactor, "distance_change_factor", 1.0, "per-pass multiplicative decay of min_distance_change")
	fl.Float64Var(&f.iterationsChangeFactor, "iterations_change_factor", 1.0, "per-pass multiplicative decay of max_iterations")
	fl.Int64Var(&f.seed, "seed", 0, "PRNG seed for --randomize")
	fl.BoolVar(&f.partitionSwaps, "partition_swaps", true, "record whether partition-swap exchange is in effect (run log only)")
	fl.BoolVar(&f.randomize, "randomize", false, "shuffle the leaf assignment before sorting")
	fl.IntVar(&f.parentType, "parent_type", 0, "0=mean, 1=min-child")
	fl.IntVar(&f.distanceFunction, "distance_function", 0, "0=Euclidean, 1=cosine")
	fl.BoolVar(&f.ssmMode, "ssm_mode", false, "pin to the original Self-Sorting Map paper's single-target-kind configuration")
	fl.BoolVar(&f.debug, "debug", false, "synthesize uniform RGB data, assert invariants, and export per-height PNGs")
	fl.IntVar(&f.rows, "rows", 0, "grid rows (debug/no-config mode)")
	fl.IntVar(&f.columns, "columns", 0, "grid columns (debug/no-config mode)")
	fl.BoolVar(&f.logOnly, "log_only", false, "skip assignment/disparity/PNG export, write only the run log")
	fl.BoolVar(&f.export, "export", true, "export assignment, disparity, and visualization config files")
	fl.StringVar(&f.visualizationConfig, "visualization_config", "", "if set, also emit a nearest-leaf-remapped assignment of the sorted tree (the file at this path is not read)")
	fl.StringVar(&f.targets, "targets", "hierarchy", "comma-separated target kinds per pass (hierarchy, neighbourhood, hierarchy_neighbourhood)")
	fl.BoolVar(&f.combineTargets, "combine_targets", false, "concatenate every --targets kind's targets on every pass, instead of rotating through them one per pass")
	fl.StringVar(&f.metricsAddr, "metrics_addr", "", "if set, serve Prometheus metrics at this address while the run executes")

	return cmd
}

// bindEnv makes every flag overridable by an LDGSSM_<FLAG_NAME> environment
// variable, matching junjiewwang-perf-analysis/pkg/config's convention.
func bindEnv(cmd *cobra.Command) {
	v := viper.New()
	v.SetEnvPrefix("LDGSSM")
	v.AutomaticEnv()
	cmd.Flags().VisitAll(func(fl *pflag.Flag) {
		envKey := strings.ToUpper(strings.ReplaceAll(fl.Name, "-", "_"))
		if !fl.Changed && v.IsSet(envKey) {
			_ = fl.Value.Set(v.GetString(envKey))
		}
	})
}

func parseTargetKinds(spec string) ([]target.Kind, error) {
	var out []target.Kind
	for _, name := range strings.Split(spec, ",") {
		switch strings.TrimSpace(name) {
		case "hierarchy":
			out = append(out, target.Hierarchy)
		case "neighbourhood", "neighborhood":
			out = append(out, target.Neighbourhood)
		case "hierarchy_neighbourhood", "hierarchy_neighborhood":
			out = append(out, target.HierarchyNeighbourhood)
		default:
			return nil, fmt.Errorf("cmd/ldgssm: unknown target kind %q", name)
		}
	}
	return out, nil
}

func distanceFuncFor(code int) (vecmath.DistanceFunc, error) {
	switch code {
	case 0:
		return vecmath.EuclideanDistance, nil
	case 1:
		return vecmath.CosineDistance, nil
	default:
		return nil, fmt.Errorf("cmd/ldgssm: unknown distance_function %d", code)
	}
}

func depthFor(rows, cols int) int {
	depth := 1
	for rows > 1 || cols > 1 {
		rows = (rows + 1) / 2
		cols = (cols + 1) / 2
		depth++
	}
	return depth
}

func runSort(ctx context.Context, f *runFlags) error {
	level := ldglog.LevelInfo
	if f.debug {
		level = ldglog.LevelDebug
	}
	logger := ldglog.New(level)

	if f.cores > 0 {
		parallelutil.Workers = f.cores
	}

	distanceFn, err := distanceFuncFor(f.distanceFunction)
	if err != nil {
		fatal(logger, err)
	}
	targetKinds, err := parseTargetKinds(f.targets)
	if err != nil {
		fatal(logger, err)
	}

	rows, cols := f.rows, f.columns
	var data []vecmath.Vector

	if f.config != "" && !f.debug {
		cfg, err := ioconfig.LoadInputConfiguration(f.config)
		if err != nil {
			fatal(logger, err)
		}
		if cfg.Type != ioconfig.TypeData {
			fatal(logger, fmt.Errorf("cmd/ldgssm: --config must name a %q configuration for run", ioconfig.TypeData))
		}
		rows, cols = cfg.Grid.Rows, cfg.Grid.Columns
		elemLen := cfg.Data.Dimensions.X * cfg.Data.Dimensions.Y * cfg.Data.Dimensions.Z
		var raw []byte
		if strings.HasSuffix(cfg.Data.Path, ".raw.bz2") {
			raw, err = assignio.ReadLegacyBzip2(cfg.Data.Path)
		} else {
			raw, err = os.ReadFile(cfg.Data.Path)
			if err != nil {
				err = fmt.Errorf("cmd/ldgssm: reading %s: %w", cfg.Data.Path, err)
			}
		}
		if err != nil {
			fatal(logger, err)
		}
		bitWidth, err := rawdata.DetectBitWidth(len(raw), cfg.Data.Length, elemLen)
		if err != nil {
			fatal(logger, err)
		}
		data, err = rawdata.DecodeDense(raw, cfg.Data.Length, elemLen, bitWidth)
		if err != nil {
			fatal(logger, err)
		}
	} else {
		if rows <= 0 || cols <= 0 {
			fatal(logger, fmt.Errorf("cmd/ldgssm: --rows and --columns are required without --config"))
		}
		data = rawdata.GenerateUniformRGBData(rows, cols)
	}

	depth := depthFor(rows, cols)
	parentKind := quadtree.ParentKind(f.parentType)
	tree, err := quadtree.New(rows, cols, depth, data, parentKind)
	if err != nil {
		fatal(logger, err)
	}

	if f.input != "" {
		words, err := assignio.ReadAssignment(f.input)
		if err != nil {
			fatal(logger, err)
		}
		if err := tree.RestoreAssignment(words, assignio.VoidSentinel); err != nil {
			fatal(logger, err)
		}
	}

	if err := os.MkdirAll(f.output, 0o755); err != nil {
		fatal(logger, err)
	}

	runLog, err := ldglog.NewRunLogger(filepath.Join(f.output, "log.csv"), time.Now())
	if err != nil {
		fatal(logger, err)
	}
	defer runLog.Close()
	runLog.SetNumRows(rows).SetNumCols(cols).
		SetMaxIterations(f.maxIterations).
		SetDistanceThreshold(f.minDistanceChange).
		SetUsingPartitionSwaps(f.partitionSwaps)

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	if f.metricsAddr != "" {
		go serveMetricsAt(f.metricsAddr, reg, logger)
	}

	scheduler := &partition.Scheduler{Tree: tree, DistanceFn: distanceFn, Kind: targetKinds[0]}
	schedule := runner.Schedule{
		NumberOfPasses:          f.passes,
		PassesPerCheckpoint:     f.passesPerCheckpoint,
		IterationsPerCheckpoint: f.iterationsPerCheckpoint,
		CombineTargets:          f.combineTargets,
	}
	opts := runner.Options{
		MaxIterations:          f.maxIterations,
		DistanceThreshold:      f.minDistanceChange,
		IterationsChangeFactor: f.iterationsChangeFactor,
		DistanceChangeFactor:   f.distanceChangeFactor,
		TargetKinds:            targetKinds,
		RandomizeAssignment:    f.randomize,
		Seed:                   f.seed,
		SSMMode:                f.ssmMode,
		Debug:                  f.debug,
	}

	checkpoint := func(pass, height, iteration int, distance float64, numExchanges int) {
		if schedule.PassesPerCheckpoint > 0 && pass%schedule.PassesPerCheckpoint != 0 {
			return
		}
		if schedule.IterationsPerCheckpoint > 0 && iteration%schedule.IterationsPerCheckpoint != 0 {
			return
		}
		if err := runLog.Write(pass, height, iteration, distance, numExchanges); err != nil {
			logger.Warn("run log write failed", ldglog.F("error", err))
		}
		collector.Observe(pass, height, distance, numExchanges)
	}

	results, err := runner.Run(ctx, scheduler, schedule, opts, checkpoint)
	if err != nil {
		fatal(logger, err)
	}
	collector.PassesCompleted.Add(float64(len(results)))
	for _, r := range results {
		logger.Info("pass complete", ldglog.F("pass", r.Pass), ldglog.F("initial_hnd", r.InitialHND), ldglog.F("final_hnd", r.FinalHND))
	}

	if f.logOnly {
		return nil
	}
	if !f.export {
		return nil
	}
	return exportResults(ctx, tree, distanceFn, f, logger)
}

func exportResults(ctx context.Context, tree *quadtree.QuadAssignmentTree, distanceFn vecmath.DistanceFunc, f *runFlags, logger ldglog.Logger) error {
	assignPath := filepath.Join(f.output, "assignment.raw.zst")
	if err := assignio.WriteAssignment(assignPath, tree); err != nil {
		return err
	}

	disparities, err := hnd.Disparity(ctx, tree, distanceFn)
	if err != nil {
		return err
	}
	disparityPath := filepath.Join(f.output, "disparity.raw.zst")
	if err := assignio.WriteDisparities(disparityPath, disparities); err != nil {
		return err
	}

	finalCfg := ioconfig.FinalExportConfiguration{
		Assignment:      assignPath,
		DisparityConfig: disparityPath,
	}

	if f.visualizationConfig != "" {
		remapped, err := assignio.RemapToNearestLeaf(ctx, tree, distanceFn)
		if err != nil {
			return err
		}
		vizAssignPath := filepath.Join(f.output, "visualization.raw.zst")
		if err := assignio.WriteWords(vizAssignPath, remapped); err != nil {
			return err
		}
		finalCfg.VisualizationConfig = vizAssignPath
	}

	if err := ioconfig.SaveFinalExportConfiguration(filepath.Join(f.output, "export.json"), finalCfg); err != nil {
		return err
	}

	if f.debug {
		for h := 0; h < tree.Depth(); h++ {
			path := filepath.Join(f.output, "height_"+strconv.Itoa(h)+".png")
			if err := imaging.SaveHeightPNG(path, tree, h); err != nil {
				if err == imaging.ErrElemLenTooShort {
					break
				}
				return err
			}
		}
	}

	logger.Info("export complete", ldglog.F("output", f.output))
	return nil
}
