package imaging

import "errors"

// ErrElemLenTooShort indicates a tree height whose vectors have fewer than
// three components, so no RGB image can be formed.
var ErrElemLenTooShort = errors.New("imaging: vectors must have at least 3 components to render as RGB")
