// Package clock abstracts wall-clock reads so frame timing and charge ramps
// can be driven deterministically in tests.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Real reads the system monotonic clock.
type Real struct{}

// Now returns the current time with monotonic clock reading
func (Real) Now() time.Time {
	return time.Now()
}

// Mock is a controllable clock for tests
type Mock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMock creates a mock clock starting at start
func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

// Now returns the current mocked time
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set moves the mock to t
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the mock forward by d
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
