package transition

import (
	"testing"
	"time"

	"github.com/automoto/tower-climb/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitThenEntry(t *testing.T) {
	m := New()
	exited, entered := 0, 0

	require.NoError(t, m.StartExit(leveldata.About, Pipe, leveldata.Right, func() { exited++ }))
	assert.True(t, m.IsActive())
	assert.Equal(t, AnimatingExit, m.Phase())
	assert.Equal(t, leveldata.About, m.Target())

	m.Update(400 * time.Millisecond)
	assert.InDelta(t, 0.5, m.Progress(), 1e-4)
	off := m.PlayerOffset()
	assert.InDelta(t, 32, off.X, 0.01)
	assert.InDelta(t, 0.5, off.Opacity, 1e-4)

	m.Update(time.Second)
	assert.Equal(t, FadingOut, m.Phase())
	assert.Equal(t, 1.0, m.Progress())

	m.Update(150 * time.Millisecond)
	assert.InDelta(t, 0.5, m.Overlay(), 1e-4)

	m.Update(time.Second)
	assert.Equal(t, Black, m.Phase())
	assert.Equal(t, 1.0, m.Overlay())
	assert.Equal(t, 1, exited)
	assert.True(t, m.IsActive())

	assert.ErrorIs(t, m.StartExit(leveldata.Skills, Door, leveldata.Up, nil), ErrBusy)

	require.NoError(t, m.StartEntry(Pipe, leveldata.Right, func() { entered++ }))
	assert.Equal(t, FadingIn, m.Phase())
	assert.Equal(t, Offset{X: -64, Opacity: 0}, m.PlayerOffset())

	m.Update(time.Second)
	assert.Equal(t, AnimatingEntry, m.Phase())
	assert.Equal(t, 0.0, m.Overlay())

	m.Update(time.Second)
	assert.Equal(t, Idle, m.Phase())
	assert.False(t, m.IsActive())
	assert.Equal(t, 1, entered)
	assert.Equal(t, 1, exited)
	assert.Equal(t, Offset{Opacity: 1}, m.PlayerOffset())
	assert.Equal(t, leveldata.SectionID(""), m.Target())
}

func TestEntryRejectedWhileRunning(t *testing.T) {
	m := New()
	require.NoError(t, m.StartEntry(Door, leveldata.Down, nil))

	assert.ErrorIs(t, m.StartEntry(Door, leveldata.Down, nil), ErrBusy)
	assert.ErrorIs(t, m.StartExit(leveldata.Hero, Door, leveldata.Down, nil), ErrBusy)
}

func TestFallEntryDropsFromAbove(t *testing.T) {
	m := New()
	require.NoError(t, m.StartEntry(Fall, leveldata.Down, nil))

	assert.Equal(t, Offset{Y: -192, Opacity: 1}, m.PlayerOffset())

	m.Update(time.Second)
	m.Update(250 * time.Millisecond)
	off := m.PlayerOffset()
	assert.InDelta(t, -96, off.Y, 0.01)
	assert.Equal(t, 1.0, off.Opacity)
}

func TestPipeOffsetsByDirection(t *testing.T) {
	m := New()
	require.NoError(t, m.StartExit(leveldata.About, Pipe, leveldata.Left, nil))
	m.Update(time.Second)
	assert.Equal(t, Offset{X: -64, Opacity: 0}, m.PlayerOffset())

	m = New()
	require.NoError(t, m.StartExit(leveldata.About, Pipe, leveldata.Up, nil))
	m.Update(time.Second)
	assert.Equal(t, Offset{Opacity: 0}, m.PlayerOffset(), "vertical pipes only fade")
}

func TestDoorEntryFades(t *testing.T) {
	m := New()
	require.NoError(t, m.StartEntry(Door, leveldata.Down, nil))
	m.Update(time.Second)
	m.Update(300 * time.Millisecond)

	off := m.PlayerOffset()
	assert.Equal(t, 0.0, off.X)
	assert.InDelta(t, 0.5, off.Opacity, 1e-4)
}

func TestUpdateWhileIdleIsNoop(t *testing.T) {
	m := New()
	m.Update(time.Second)
	assert.Equal(t, Idle, m.Phase())
	assert.Equal(t, 0.0, m.Overlay())
}

func TestKindMapping(t *testing.T) {
	assert.Equal(t, Pipe, KindOf(leveldata.EntryPipe))
	assert.Equal(t, Door, KindOf(leveldata.EntryDoor))
	assert.Equal(t, Fall, KindOf(leveldata.EntryFall))

	assert.Equal(t, 800*time.Millisecond, Pipe.Duration())
	assert.Equal(t, 1000*time.Millisecond, Flag.Duration())
	assert.Equal(t, "black", Black.String())
}
