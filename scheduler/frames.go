package scheduler

import (
	"context"
	"log"
	"sync"
	"time"
)

// FrameID identifies a requested frame so it can be cancelled.
type FrameID uint64

// FrameSource delivers "next frame" callbacks, in the manner of a display
// refresh.
type FrameSource interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// ManualFrames fires frames only when told to. Tests use it for fixed-step
// ticks and the ebiten shell fires it once per Update.
type ManualFrames struct {
	next    FrameID
	pending []frameRequest
}

func NewManualFrames() *ManualFrames {
	return &ManualFrames{}
}

func (m *ManualFrames) RequestFrame(fn func()) FrameID {
	m.next++
	m.pending = append(m.pending, frameRequest{id: m.next, fn: fn})
	return m.next
}

func (m *ManualFrames) CancelFrame(id FrameID) {
	for i, r := range m.pending {
		if r.id == id {
			m.pending = append(m.pending[:i:i], m.pending[i+1:]...)
			return
		}
	}
}

// Fire runs every frame requested before the call and returns how many ran.
// Frames requested while firing wait for the next Fire.
func (m *ManualFrames) Fire() int {
	batch := m.pending
	m.pending = nil
	for _, r := range batch {
		r.fn()
	}
	return len(batch)
}

func (m *ManualFrames) Pending() int { return len(m.pending) }

// TickerFrames fires requested frames from a fixed-rate ticker. Run owns
// the goroutine that invokes the frames, so callbacks never run
// concurrently with each other.
type TickerFrames struct {
	mu       sync.Mutex
	interval time.Duration
	next     FrameID
	pending  []frameRequest
}

func NewTickerFrames(ticksPerSecond int) *TickerFrames {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	return &TickerFrames{interval: time.Second / time.Duration(ticksPerSecond)}
}

func (t *TickerFrames) RequestFrame(fn func()) FrameID {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.pending = append(t.pending, frameRequest{id: t.next, fn: fn})
	return t.next
}

func (t *TickerFrames) CancelFrame(id FrameID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, r := range t.pending {
		if r.id == id {
			t.pending = append(t.pending[:i:i], t.pending[i+1:]...)
			return
		}
	}
}

// Run fires pending frames on every tick until ctx is done.
func (t *TickerFrames) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	log.Printf("[scheduler] frame ticker started at %v per frame", t.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("[scheduler] frame ticker stopped")
			return
		case <-ticker.C:
			t.fire()
		}
	}
}

func (t *TickerFrames) fire() {
	t.mu.Lock()
	batch := t.pending
	t.pending = nil
	t.mu.Unlock()

	for _, r := range batch {
		r.fn()
	}
}
