// Package dispatch owns the campaign lifecycle and the throttled send
// loop that works through a campaign's pending contacts.
package dispatch

import "errors"

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrMissingInstance  = errors.New("campaign has no instance configured")
	ErrAlreadyRunning   = errors.New("campaign is already running")
)
