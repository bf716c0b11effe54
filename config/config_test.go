package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchTowerLayout(t *testing.T) {
	t.Cleanup(Reset)

	assert.Equal(t, 0.35, Physics.Gravity)
	assert.Equal(t, -14.0, Physics.ChargeJumpMaxForce)
	assert.Equal(t, time.Second, Physics.ChargeTime)
	assert.Equal(t, 128.0, Tower.FallOutMargin)
	assert.Equal(t, 96.0, Tower.SpawnLift)
	assert.Nil(t, Bounds.MinY)
	assert.Nil(t, Bounds.MaxY)
}

func TestLoadWithoutPathOrEnvReturnsNil(t *testing.T) {
	t.Setenv("TOWER_CONFIG", "")

	f, err := Load("")
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestLoadAndApplyOverrides(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tower.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
language: en
physics:
  gravity: 0.5
  charge_time_ms: 800
camera:
  smoothing: 0.2
scheduler:
  max_delta_ms: 50
  metrics_addr: ":9100"
debug:
  show_colliders: true
`), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, f)
	f.Apply()

	assert.Equal(t, 0.5, Physics.Gravity)
	assert.Equal(t, 800*time.Millisecond, Physics.ChargeTime)
	assert.Equal(t, 8.0, Physics.MaxFallSpeed, "unset fields keep defaults")
	assert.Equal(t, 0.2, Camera.FollowSmoothing)
	assert.Equal(t, 50*time.Millisecond, Scheduler.MaxDelta)
	assert.Equal(t, ":9100", MetricsAddr())
	assert.True(t, Debug.ShowColliders)
	assert.Equal(t, "en", C.Language)
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: Env Tower\n"), 0o600))
	t.Setenv("TOWER_CONFIG", path)

	f, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "Env Tower", f.Window.Title)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMetricsAddrEnvFallback(t *testing.T) {
	t.Cleanup(Reset)
	t.Setenv("TOWER_METRICS_ADDR", ":2112")

	assert.Equal(t, ":2112", MetricsAddr())
}

func TestStateAndActionNames(t *testing.T) {
	assert.Equal(t, "charge", Charge.String())
	assert.Equal(t, "unknown", EntityState(99).String())
	assert.Equal(t, "jump", ActionJump.String())
	assert.Equal(t, "unknown", ActionCount.String())
}
