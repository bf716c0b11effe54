package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the on-disk override format. Zero values leave the built-in
// default untouched.
type File struct {
	Language string `yaml:"language"`

	Physics struct {
		Gravity            float64 `yaml:"gravity"`
		MaxFallSpeed       float64 `yaml:"max_fall_speed"`
		PlayerSpeed        float64 `yaml:"player_speed"`
		ClimbSpeed         float64 `yaml:"climb_speed"`
		JumpForce          float64 `yaml:"jump_force"`
		ChargeMinForce     float64 `yaml:"charge_min_force"`
		ChargeMaxForce     float64 `yaml:"charge_max_force"`
		ChargeHorizontal   float64 `yaml:"charge_horizontal"`
		ChargeTimeMs       int     `yaml:"charge_time_ms"`
		ChargeMinThreshold float64 `yaml:"charge_min_threshold"`
	} `yaml:"physics"`
	Camera struct {
		DeadZoneTop    float64 `yaml:"dead_zone_top"`
		DeadZoneBottom float64 `yaml:"dead_zone_bottom"`
		Smoothing      float64 `yaml:"smoothing"`
	} `yaml:"camera"`
	Scheduler struct {
		MaxDeltaMs     float64 `yaml:"max_delta_ms"`
		TicksPerSecond int     `yaml:"ticks_per_second"`
		MetricsAddr    string  `yaml:"metrics_addr"`
	} `yaml:"scheduler"`
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`
	Debug struct {
		ShowColliders bool `yaml:"show_colliders"`
		ShowFPS       bool `yaml:"show_fps"`
	} `yaml:"debug"`
}

// Load reads a YAML override file. An empty path falls back to the
// TOWER_CONFIG environment variable; if neither is set it returns nil, nil
// and the defaults stay in effect.
func Load(path string) (*File, error) {
	if path == "" {
		path = os.Getenv("TOWER_CONFIG")
		if path == "" {
			return nil, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &f, nil
}

// Apply copies every non-zero override onto the global configuration.
func (f *File) Apply() {
	if f == nil {
		return
	}

	setFloat(&Physics.Gravity, f.Physics.Gravity)
	setFloat(&Physics.MaxFallSpeed, f.Physics.MaxFallSpeed)
	setFloat(&Physics.PlayerSpeed, f.Physics.PlayerSpeed)
	setFloat(&Physics.ClimbSpeed, f.Physics.ClimbSpeed)
	setFloat(&Physics.JumpForce, f.Physics.JumpForce)
	setFloat(&Physics.ChargeJumpMinForce, f.Physics.ChargeMinForce)
	setFloat(&Physics.ChargeJumpMaxForce, f.Physics.ChargeMaxForce)
	setFloat(&Physics.ChargeJumpHorizontal, f.Physics.ChargeHorizontal)
	setFloat(&Physics.ChargeMinThreshold, f.Physics.ChargeMinThreshold)
	if f.Physics.ChargeTimeMs > 0 {
		Physics.ChargeTime = time.Duration(f.Physics.ChargeTimeMs) * time.Millisecond
	}

	setFloat(&Camera.DeadZoneTop, f.Camera.DeadZoneTop)
	setFloat(&Camera.DeadZoneBottom, f.Camera.DeadZoneBottom)
	setFloat(&Camera.FollowSmoothing, f.Camera.Smoothing)

	if f.Scheduler.MaxDeltaMs > 0 {
		Scheduler.MaxDelta = time.Duration(f.Scheduler.MaxDeltaMs * float64(time.Millisecond))
	}
	if f.Scheduler.TicksPerSecond > 0 {
		Scheduler.TicksPerSecond = f.Scheduler.TicksPerSecond
	}
	if f.Scheduler.MetricsAddr != "" {
		Scheduler.MetricsAddr = f.Scheduler.MetricsAddr
	}

	if f.Window.Width > 0 {
		C.Width = f.Window.Width
	}
	if f.Window.Height > 0 {
		C.Height = f.Window.Height
	}
	if f.Window.Title != "" {
		C.Title = f.Window.Title
	}
	if f.Language != "" {
		C.Language = f.Language
	}

	Debug.ShowColliders = Debug.ShowColliders || f.Debug.ShowColliders
	Debug.ShowFPS = Debug.ShowFPS || f.Debug.ShowFPS
}

// MetricsAddr returns the metrics listen address with priority
// config -> TOWER_METRICS_ADDR env -> disabled.
func MetricsAddr() string {
	if Scheduler.MetricsAddr != "" {
		return Scheduler.MetricsAddr
	}
	return os.Getenv("TOWER_METRICS_ADDR")
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
