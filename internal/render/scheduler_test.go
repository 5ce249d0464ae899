package render

import (
	"image"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkboard/internal/state"
)

func TestSchedulerFlushRendersPendingFrame(t *testing.T) {
	p := NewPipeline(10, 10, nil)

	var mu sync.Mutex
	var frames []*image.RGBA
	s := NewScheduler(p, func(img *image.RGBA) {
		mu.Lock()
		frames = append(frames, img)
		mu.Unlock()
	})
	defer s.Close()

	s.Invalidate(Frame{History: state.History{BackgroundColor: "#ff0000"}})
	s.Flush()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, frames)
	assert.Equal(t, uint8(255), frames[len(frames)-1].RGBAAt(5, 5).R)
}

func TestSchedulerFlushWithoutPendingIsNoop(t *testing.T) {
	p := NewPipeline(10, 10, nil)
	calls := 0
	s := NewScheduler(p, func(*image.RGBA) { calls++ })
	// Drain anything the constructor-era loop might do before sampling.
	s.Close()

	before := calls
	s.Flush()
	assert.Equal(t, before, calls)
}

func TestSchedulerCoalescesBursts(t *testing.T) {
	p := NewPipeline(10, 10, nil)

	var mu sync.Mutex
	count := 0
	s := NewScheduler(p, func(*image.RGBA) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	defer s.Close()

	for i := 0; i < 100; i++ {
		s.Invalidate(Frame{})
	}
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return count >= 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(3 * frameInterval)
	mu.Lock()
	defer mu.Unlock()
	assert.Less(t, count, 10, "a burst of invalidations must not cause one render each")
}
