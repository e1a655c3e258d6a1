// Command ldgssm sorts a grid of data vectors into a spatially coherent
// layout using the hierarchical quadtree-of-aggregates self-sorting
// algorithm, and optionally exports the result as an assignment file,
// disparity vector, and (in debug mode) per-height PNGs.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
