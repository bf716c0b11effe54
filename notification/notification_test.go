package notification

import (
	"testing"
	"time"

	"github.com/automoto/tower-climb/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueue() (*Queue, *clock.Mock) {
	mc := clock.NewMock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewQueue(mc), mc
}

func TestKindsExpireOnTheirOwnSchedule(t *testing.T) {
	q, mc := newQueue()

	badge := q.Show(Badge, "Go", "collected")
	q.Show(Achievement, "Summit", "reached the top")
	assert.Equal(t, "notification-1", badge)
	require.Len(t, q.Active(), 2)

	mc.Advance(1999 * time.Millisecond)
	assert.Equal(t, 0, q.Tick())

	mc.Advance(time.Millisecond)
	assert.Equal(t, 1, q.Tick())
	cur, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, Achievement, cur.Kind)
	assert.Equal(t, 2*time.Second, q.Remaining(cur))

	mc.Advance(2 * time.Second)
	q.Tick()
	_, ok = q.Current()
	assert.False(t, ok)
}

func TestShowForCustomDuration(t *testing.T) {
	q, mc := newQueue()
	id := q.ShowFor(Info, "Skills", "details", 6*time.Second)

	mc.Advance(5 * time.Second)
	q.Tick()
	cur, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, id, cur.ID)
	assert.Equal(t, 6*time.Second, cur.Duration)
}

func TestDismissAndClear(t *testing.T) {
	q, _ := newQueue()
	a := q.Show(Stat, "a", "")
	q.Show(Info, "b", "")
	q.Show(Info, "c", "")

	q.Dismiss(a)
	q.Dismiss("missing")
	active := q.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "b", active[0].Title)

	q.ClearAll()
	assert.Empty(t, q.Active())
}

func TestDefaultDurations(t *testing.T) {
	assert.Equal(t, 2500*time.Millisecond, Stat.Duration())
	assert.Equal(t, 2000*time.Millisecond, Badge.Duration())
	assert.Equal(t, 3000*time.Millisecond, Info.Duration())
	assert.Equal(t, 4000*time.Millisecond, Achievement.Duration())
}

func TestActiveIsACopy(t *testing.T) {
	q, _ := newQueue()
	q.Show(Info, "original", "")

	active := q.Active()
	active[0].Title = "changed"
	cur, _ := q.Current()
	assert.Equal(t, "original", cur.Title)
}
