package partition

import "errors"

// ErrHeightOutOfRange indicates partitionHeight or comparisonHeight does
// not name a valid height of the scheduler's tree.
var ErrHeightOutOfRange = errors.New("partition: height out of range")
