package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ldgssm/ldgssm/ldglog"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ldgssm",
		Short: "Sort a grid of data vectors into a spatially coherent hierarchical layout",
		Long: "ldgssm builds a quadtree of aggregates over a grid of data vectors and " +
			"repeatedly exchanges cells between heights until the layout stops improving, " +
			"or a configured iteration/distance budget is exhausted.",
		SilenceUsage: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newServeMetricsCmd())
	return root
}

func fatal(logger ldglog.Logger, err error) {
	if logger != nil {
		logger.Error(err.Error())
	}
	fmt.Fprintln(os.Stderr, "ldgssm:", err)
	os.Exit(1)
}
