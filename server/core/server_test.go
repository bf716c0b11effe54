package core

import (
	"testing"
	"time"

	"github.com/automoto/tower-climb/clock"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/shared/leveldata"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 16667 * time.Microsecond

func newTestServer(t *testing.T, pilot Pilot) (*Server, *prometheus.Registry, *clock.Mock) {
	t.Helper()
	reg := prometheus.NewRegistry()
	mc := clock.NewMock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewServer(nil, 60, pilot, mc, reg), reg, mc
}

func run(s *Server, mc *clock.Mock, frames int) {
	for i := 0; i < frames; i++ {
		mc.Advance(frame)
		_ = s.Step(frame)
	}
}

func TestIdlePilotSettlesOnTheGround(t *testing.T) {
	s, _, mc := newTestServer(t, Idle{})
	run(s, mc, 180)

	st := s.Status()
	assert.Equal(t, uint64(180), st.Frame)
	assert.Equal(t, leveldata.Hero, st.Section)
	assert.Equal(t, cfg.Idle, st.State)
	assert.True(t, s.World().Player().Body().Grounded)
	assert.Zero(t, st.Respawns)
}

func TestWandererMovesAndJumps(t *testing.T) {
	s, _, mc := newTestServer(t, NewWanderer())
	start := s.Status().X

	jumped := false
	for i := 0; i < 600; i++ {
		mc.Advance(frame)
		require.NoError(t, s.Step(frame))
		if !s.World().Player().Body().Grounded {
			jumped = true
		}
	}

	assert.NotEqual(t, start, s.Status().X)
	assert.True(t, jumped)
}

func TestMetricsTrackHeightAndSection(t *testing.T) {
	s, reg, mc := newTestServer(t, Idle{})
	run(s, mc, 120)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.section.WithLabelValues(string(leveldata.Hero))))
	floor := s.World().Tower().GroundLevel(leveldata.Hero)
	assert.InDelta(t, floor-s.Status().Y, testutil.ToFloat64(s.metrics.height), 1e-9)

	n, err := testutil.GatherAndCount(reg, "tower_world_respawns_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNilMetricsAreIgnored(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.sectionChanged("up")
		m.respawned()
		m.observe(Status{}, 0)
	})
}

func TestTeleportMovesTheClimb(t *testing.T) {
	s, _, mc := newTestServer(t, Idle{})
	run(s, mc, 30)

	require.NoError(t, s.World().TeleportToSection(leveldata.Skills))
	run(s, mc, 240)

	st := s.Status()
	assert.Equal(t, leveldata.Skills, st.Section)
	assert.Zero(t, st.Respawns)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.section.WithLabelValues(string(leveldata.Skills))))
}
