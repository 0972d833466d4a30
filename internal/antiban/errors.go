// Package antiban implements the rate/policy engine that paces outbound
// sends: randomized delays, business-hours gating, per-instance message
// counters and preventive pauses.
package antiban

import "errors"

// ErrInvalidPhone marks a destination that cannot be dialed. Callers
// skip the contact instead of aborting the run.
var ErrInvalidPhone = errors.New("phone number has fewer than 10 digits")
