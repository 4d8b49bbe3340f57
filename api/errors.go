package api

import "errors"

// ErrorKeyMissing returned by delete when key is not in the index.
var ErrorKeyMissing = errors.New("rbt.keymissing")

// ErrorInvalidInput returned by workload parser on malformed input.
var ErrorInvalidInput = errors.New("workload.invalidinput")

// ErrorClosed returned when posting to a task runner that has
// already been stopped.
var ErrorClosed = errors.New("runner.closed")
