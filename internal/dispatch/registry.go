package dispatch

import "sync"

type runState struct {
	paused bool
}

// Registry tracks which campaigns have a live dispatch loop and whether
// each one has been asked to pause. The loop checks the paused flag
// between contacts; entries are removed when the loop exits.
type Registry struct {
	mu   sync.RWMutex
	runs map[int64]*runState
}

func NewRegistry() *Registry {
	return &Registry{
		runs: make(map[int64]*runState),
	}
}

// Track registers a campaign as running. Returns false when a loop is
// already tracked for this id.
func (r *Registry) Track(campaignID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[campaignID]; exists {
		return false
	}
	r.runs[campaignID] = &runState{}
	return true
}

// Tracked reports whether a loop is alive for the campaign.
func (r *Registry) Tracked(campaignID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.runs[campaignID]
	return exists
}

// SetPaused flips the cooperative pause flag. A no-op when no loop is
// tracked.
func (r *Registry) SetPaused(campaignID int64, paused bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if state, exists := r.runs[campaignID]; exists {
		state.paused = paused
	}
}

// Paused reports whether the loop should stop at its next checkpoint.
func (r *Registry) Paused(campaignID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if state, exists := r.runs[campaignID]; exists {
		return state.paused
	}
	return false
}

// Remove drops the campaign's run state so it becomes startable again.
func (r *Registry) Remove(campaignID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.runs, campaignID)
}

// ActiveCount returns the number of live loops.
func (r *Registry) ActiveCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.runs)
}
