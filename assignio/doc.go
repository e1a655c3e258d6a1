// Package assignio reads and writes the assignment-file wire format: a
// raw uint32 dump, row-major per height, heights concatenated leaf-first
// up to the root, with 0xFFFFFFFF marking a void cell. New output is
// zstd-compressed; legacy bzip2-compressed inputs (the format the
// original C++ tool wrote) are still readable, since the Go standard
// library has a bzip2 reader but no bzip2 writer.
//
// It also implements the visualization-assignment remap: when exporting
// onto a pre-existing visualization, every internal node's assignment
// entry is rewritten to point at the single closest leaf in its own
// subtree rather than keeping its synthetic aggregate slot.
package assignio
