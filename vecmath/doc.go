// Package vecmath implements the numeric primitives shared by the
// quadtree's aggregation step and the exchange/target packages' distance
// scoring: vector aggregation (mean and weighted mean), medoid selection
// (find-min), and the Euclidean/cosine/null distance functions.
//
// Every Vector is a fixed-length []float64; a nil Vector represents a void
// (unassigned) cell and is handled explicitly by every function below
// rather than by panicking on a length mismatch.
package vecmath
