package dispatch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_TrackAndRemove(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.Tracked(1))
	assert.True(t, r.Track(1))
	assert.True(t, r.Tracked(1))
	assert.False(t, r.Track(1), "double tracking the same campaign")
	assert.Equal(t, 1, r.ActiveCount())

	r.Remove(1)
	assert.False(t, r.Tracked(1))
	assert.True(t, r.Track(1), "trackable again after removal")
}

func TestRegistry_PauseFlag(t *testing.T) {
	r := NewRegistry()

	// pause on an untracked campaign is a no-op
	r.SetPaused(1, true)
	assert.False(t, r.Paused(1))

	r.Track(1)
	assert.False(t, r.Paused(1))

	r.SetPaused(1, true)
	assert.True(t, r.Paused(1))

	r.SetPaused(1, false)
	assert.False(t, r.Paused(1))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			r.Track(id)
			r.SetPaused(id, true)
			_ = r.Paused(id)
			r.Remove(id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, r.ActiveCount())
}
