package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockAdvanceAndSet(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMock(start)

	m.Advance(250 * time.Millisecond)
	assert.Equal(t, start.Add(250*time.Millisecond), m.Now())

	m.Set(start)
	assert.Equal(t, start, m.Now())
}

func TestRealIsMonotonic(t *testing.T) {
	var c Clock = Real{}
	a := c.Now()
	b := c.Now()
	assert.False(t, b.Before(a))
}
