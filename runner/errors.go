package runner

import "errors"

// ErrNoPasses indicates a Schedule with zero passes was supplied to Run.
var ErrNoPasses = errors.New("runner: schedule must have at least one pass")
