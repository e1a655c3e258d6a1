package hnd

import "errors"

// ErrHeightOutOfRange indicates a height argument outside [0, Depth).
var ErrHeightOutOfRange = errors.New("hnd: height out of range")
