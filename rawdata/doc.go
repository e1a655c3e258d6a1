// Package rawdata loads and generates the flat vector payloads that back
// a quadtree's data pool: dense row-major float32/float64 dumps read
// according to an ioconfig.InputConfiguration, and the debug-mode
// synthetic RGB gradient used when no real data set is supplied.
package rawdata
