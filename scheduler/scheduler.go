// Package scheduler runs the single per-frame update loop. Consumers register
// a callback and receive the frame delta, capped so one long pause cannot
// inject a huge physics step.
package scheduler

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/automoto/tower-climb/clock"
	cfg "github.com/automoto/tower-climb/config"
)

// Callback is invoked once per tick. A returned error is logged and counted
// but does not stop the loop.
type Callback func(dt time.Duration) error

// Observer receives tick statistics. Implementations must not block.
type Observer interface {
	TickObserved(dt time.Duration, callbacks int)
	CallbackFailed(index int, err error, panicked bool)
}

type Option func(*Scheduler)

// WithObserver attaches an observer such as Metrics.
func WithObserver(o Observer) Option {
	return func(s *Scheduler) { s.observer = o }
}

// WithMaxDelta overrides config.Scheduler.MaxDelta.
func WithMaxDelta(d time.Duration) Option {
	return func(s *Scheduler) { s.maxDelta = d }
}

type registration struct {
	fn Callback
}

type Scheduler struct {
	clock    clock.Clock
	frames   FrameSource
	observer Observer
	maxDelta time.Duration

	callbacks []*registration

	running bool
	pending bool
	frameID FrameID
	last    time.Time
	dt      time.Duration
	fps     int
}

func New(c clock.Clock, frames FrameSource, opts ...Option) *Scheduler {
	if c == nil {
		c = clock.Real{}
	}
	s := &Scheduler{
		clock:    c,
		frames:   frames,
		maxDelta: cfg.Scheduler.MaxDelta,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register appends fn to the tick order and returns a func that removes it.
// Calling the returned func more than once is harmless.
func (s *Scheduler) Register(fn Callback) (unregister func()) {
	r := &registration{fn: fn}
	s.callbacks = append(s.callbacks, r)
	return func() {
		for i, existing := range s.callbacks {
			if existing == r {
				s.callbacks = append(s.callbacks[:i:i], s.callbacks[i+1:]...)
				return
			}
		}
	}
}

// Start begins ticking on the next frame. Starting a running scheduler does
// nothing.
func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.last = s.clock.Now()
	s.request()
}

// Stop cancels the pending frame. Stopping a stopped scheduler does nothing.
func (s *Scheduler) Stop() {
	s.running = false
	if s.pending {
		s.frames.CancelFrame(s.frameID)
		s.pending = false
	}
}

func (s *Scheduler) IsRunning() bool          { return s.running }
func (s *Scheduler) DeltaTime() time.Duration { return s.dt }
func (s *Scheduler) FPS() int                 { return s.fps }
func (s *Scheduler) Callbacks() int           { return len(s.callbacks) }

func (s *Scheduler) request() {
	s.frameID = s.frames.RequestFrame(s.tick)
	s.pending = true
}

func (s *Scheduler) tick() {
	s.pending = false
	if !s.running {
		return
	}

	now := s.clock.Now()
	dt := now.Sub(s.last)
	if dt < 0 {
		dt = 0
	}
	if dt > s.maxDelta {
		dt = s.maxDelta
	}
	s.last = now
	s.dt = dt
	s.fps = 0
	if dt > 0 {
		s.fps = int(math.Round(float64(time.Second) / float64(dt)))
	}

	// Snapshot so callbacks may unregister themselves mid-tick.
	snapshot := make([]*registration, len(s.callbacks))
	copy(snapshot, s.callbacks)
	for i, r := range snapshot {
		s.invoke(i, r.fn, dt)
	}

	if s.observer != nil {
		s.observer.TickObserved(dt, len(snapshot))
	}

	// A callback may have stopped the loop.
	if s.running {
		s.request()
	}
}

func (s *Scheduler) invoke(i int, fn Callback, dt time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			log.Printf("[scheduler] callback %d panicked: %v", i, r)
			if s.observer != nil {
				s.observer.CallbackFailed(i, err, true)
			}
		}
	}()

	if err := fn(dt); err != nil {
		log.Printf("[scheduler] callback %d failed: %v", i, err)
		if s.observer != nil {
			s.observer.CallbackFailed(i, err, false)
		}
	}
}
