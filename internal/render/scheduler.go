package render

import (
	"image"
	"sync"
	"time"
)

// frameInterval caps redraw frequency at roughly display refresh rate.
const frameInterval = 16 * time.Millisecond

// Scheduler coalesces invalidations into at most one render per frame
// interval. Rapid point appends during a drag overwrite the pending
// snapshot instead of queueing, so the pipeline only ever draws the
// latest state.
type Scheduler struct {
	pipeline *Pipeline
	sink     func(*image.RGBA)

	mu      sync.Mutex
	pending Frame
	dirty   bool

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
}

// NewScheduler starts the render loop. sink receives every finished
// frame; it is called from the scheduler's goroutine.
func NewScheduler(p *Pipeline, sink func(*image.RGBA)) *Scheduler {
	s := &Scheduler{
		pipeline: p,
		sink:     sink,
		wake:     make(chan struct{}, 1),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.loop()
	return s
}

// Invalidate records f as the next frame to draw. Never blocks.
func (s *Scheduler) Invalidate(f Frame) {
	s.mu.Lock()
	s.pending = f
	s.dirty = true
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Flush renders any pending frame synchronously. Intended for tests and
// for final paints before shutdown.
func (s *Scheduler) Flush() {
	f, ok := s.take()
	if !ok {
		return
	}
	if img := s.pipeline.Render(f); img != nil && s.sink != nil {
		s.sink(img)
	}
}

// Close stops the render loop. Pending frames are dropped.
func (s *Scheduler) Close() {
	close(s.quit)
	<-s.done
}

func (s *Scheduler) loop() {
	defer close(s.done)
	for {
		select {
		case <-s.quit:
			return
		case <-s.wake:
		}
		start := time.Now()
		if f, ok := s.take(); ok {
			if img := s.pipeline.Render(f); img != nil && s.sink != nil {
				s.sink(img)
			}
		}
		if rest := frameInterval - time.Since(start); rest > 0 {
			select {
			case <-s.quit:
				return
			case <-time.After(rest):
			}
		}
	}
}

func (s *Scheduler) take() (Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return Frame{}, false
	}
	s.dirty = false
	return s.pending, true
}
