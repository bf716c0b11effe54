package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(15, 0, 10))
	assert.Equal(t, 4.0, Clamp(4, 0, 10))

	assert.Equal(t, 12.0, Lerp(0, 100, 0.12))
	assert.Equal(t, -50.0, Lerp(-100, 0, 0.5))
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(3))
	assert.Equal(t, -1.0, Sign(-0.1))
	assert.Equal(t, 0.0, Sign(0))
}

func TestDampSnapsSmallSpeeds(t *testing.T) {
	assert.InDelta(t, 2.975, Damp(3.5, 0.85, 0.1), 1e-9)
	assert.Equal(t, 0.0, Damp(0.11, 0.85, 0.1))
	assert.InDelta(t, -0.95, Damp(-1, 0.95, 0.1), 1e-9)
}

func TestAxisDirection(t *testing.T) {
	assert.Equal(t, 0, AxisDirection(0.2, 0.3))
	assert.Equal(t, 1, AxisDirection(0.31, 0.3))
	assert.Equal(t, -1, AxisDirection(-0.9, 0.5))
}

func TestSwipeDirection(t *testing.T) {
	_, _, ok := SwipeDirection(10, 10, 30)
	assert.False(t, ok)

	x, y, ok := SwipeDirection(0, 40, 30)
	assert.True(t, ok)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, -1.0, y)

	x, y, ok = SwipeDirection(30, -40, 30)
	assert.True(t, ok)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)

	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
}
