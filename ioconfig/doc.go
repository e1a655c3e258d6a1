// Package ioconfig defines the JSON configuration documents exchanged at
// the program's I/O boundary: the input configuration describing a data
// set's grid shape and on-disk data file, and schedule/sort-option records
// mirroring the CLI's flags (the CLI itself fills runner.Schedule and
// runner.Options, not these records). Field names and nesting match the
// source's nlohmann::json-based InputConfiguration exactly, since this is
// a wire format other tools in the original pipeline also read and write.
package ioconfig
