package warmup

import "errors"

// ErrAlreadyWarming is returned by Start when the instance already has
// an active warmup record.
var ErrAlreadyWarming = errors.New("warmup is already active for this instance")
