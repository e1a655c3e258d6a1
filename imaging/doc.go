// Package imaging renders a tree height's grid as a PNG, used by debug-mode
// export for every vector whose length is at least 3 (interpreted as RGB,
// any components beyond the third ignored). This is the direct idiomatic
// substitute for the original's CImg-based image writer: no third-party Go
// image library appears anywhere in the retrieval pack, and the standard
// library's image/png is the correct tool for this narrow need.
package imaging
