package config

import (
	"image/color"
	"time"
)

// PhysicsConfig contains the arcade physics constants shared by every body
type PhysicsConfig struct {
	// Global physics
	Gravity      float64
	MaxFallSpeed float64

	// Movement
	PlayerSpeed   float64
	ClimbSpeed    float64
	Friction      float64 // Multiplier applied to SpeedX while grounded
	AirResistance float64 // Multiplier applied to SpeedX while airborne
	MinVelocity   float64 // Horizontal speed below which the body stops
	MoveEpsilon   float64 // Distance at which MoveTowards considers the target reached

	// Jumps
	JumpForce      float64
	WallJumpForce  float64
	WallKickForce  float64
	WallSlideSpeed float64

	// Charge jump
	ChargeJumpMinForce   float64
	ChargeJumpMaxForce   float64
	ChargeJumpHorizontal float64
	ChargeTime           time.Duration
	ChargeMinThreshold   float64 // Fraction of a full charge below which release is discarded

	TileSize float64
}

// PlayerConfig contains player dimensions and clamping margins
type PlayerConfig struct {
	// Dimensions
	VisualWidth      float64
	VisualHeight     float64
	CollisionWidth   float64
	CollisionHeight  float64
	CollisionOffsetX float64 // Visual sprite is drawn this far left of the collision box
	CollisionOffsetY float64 // Visual sprite is drawn this far above the collision box

	// Horizontal clamp margins against the page edges
	WallMarginLeft  float64
	WallMarginRight float64

	WalkSpeedThreshold float64 // Speed above which a grounded player reads as walking
}

// BoundsConfig limits where the player can go. Nil vertical limits mean
// the tower is unbounded vertically and fall-out is handled separately.
type BoundsConfig struct {
	MinX float64
	MaxX float64
	MinY *float64
	MaxY *float64
}

// TowerConfig describes how sections are stacked
type TowerConfig struct {
	SectionHeight    float64
	SectionCount     int
	SectionLookahead float64 // Section label switches this far past a boundary
	FallOutMargin    float64 // Distance below the hero ground that counts as fell out
	SpawnLift        float64 // Spawn point height above the hero ground
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	ViewportWidth   float64
	ViewportHeight  float64
	DeadZoneTop     float64 // Player screen Y above which the camera moves up
	DeadZoneBottom  float64 // Distance from the viewport bottom at which the camera moves down
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// CollisionConfig contains sensor sizes used by the collision checks
type CollisionConfig struct {
	TerrainMarginX     float64
	GroundSensorHeight float64
	WallSensorWidth    float64
	WallSensorMargin   float64
	BroadphaseCell     int
}

// InteractionConfig contains radii for NPC interaction
type InteractionConfig struct {
	NPCRadius float64
}

// InputConfig contains touch and joystick tuning
type InputConfig struct {
	JoystickDeadzoneX float64
	JoystickDeadzoneY float64
	SwipeMinDistance  float64
	PlayerTapRadius   float64
}

// SchedulerConfig contains frame loop configuration
type SchedulerConfig struct {
	MaxDelta         time.Duration // Upper bound on a single frame delta
	TicksPerSecond   int
	MetricsAddr      string
	MetricsNamespace string
}

// TransitionConfig contains section transition durations
type TransitionConfig struct {
	Pipe    time.Duration
	Door    time.Duration
	Flag    time.Duration
	Fall    time.Duration
	FadeOut time.Duration
	FadeIn  time.Duration
	Slide   float64 // Pixels a pipe transition slides the player
	Drop    float64 // Pixels a fall entry drops the player from
}

// NotificationConfig contains auto-dismiss durations per notification kind
type NotificationConfig struct {
	Stat        time.Duration
	Badge       time.Duration
	Info        time.Duration
	Achievement time.Duration
}

// UIConfig contains HUD layout values
type UIConfig struct {
	ChargeBarWidth  float64
	ChargeBarHeight float64
	ChargeBarOffset float64 // Gap between the player sprite and the bar
	BannerDuration  time.Duration
	HUDMargin       float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowColliders bool
	ShowFPS       bool
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	Title    string
	Language string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Bounds BoundsConfig
var Tower TowerConfig
var Camera CameraConfig
var Collision CollisionConfig
var Interaction InteractionConfig
var Input InputConfig
var Scheduler SchedulerConfig
var Transition TransitionConfig
var Notification NotificationConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default. Tests that tweak
// globals call it in a cleanup.
func Reset() {
	C = &Config{
		Width:    384,
		Height:   640,
		Title:    "Tower Climb",
		Language: "en",
	}

	// Physics Config
	Physics = PhysicsConfig{
		// Global physics
		Gravity:      0.35,
		MaxFallSpeed: 8,

		// Movement
		PlayerSpeed:   3.5,
		ClimbSpeed:    3,
		Friction:      0.85,
		AirResistance: 0.95,
		MinVelocity:   0.1,
		MoveEpsilon:   5,

		// Jumps
		JumpForce:      -9.5,
		WallJumpForce:  -8.5, // Slightly weaker than a ladder jump
		WallKickForce:  5,
		WallSlideSpeed: 1.5,

		// Charge jump
		ChargeJumpMinForce:   -4,
		ChargeJumpMaxForce:   -14,
		ChargeJumpHorizontal: 6,
		ChargeTime:           1000 * time.Millisecond,
		ChargeMinThreshold:   0.1,

		TileSize: 64,
	}

	// Player Config
	Player = PlayerConfig{
		VisualWidth:      96,
		VisualHeight:     96,
		CollisionWidth:   48,
		CollisionHeight:  80,
		CollisionOffsetX: 24,
		CollisionOffsetY: 16,

		WallMarginLeft:  6,
		WallMarginRight: 14,

		WalkSpeedThreshold: 1,
	}

	Bounds = BoundsConfig{
		MinX: 0,
		MaxX: 384,
	}

	Tower = TowerConfig{
		SectionHeight:    640,
		SectionCount:     5,
		SectionLookahead: 60,
		FallOutMargin:    2 * Physics.TileSize,
		SpawnLift:        1.5 * Physics.TileSize,
	}

	Camera = CameraConfig{
		ViewportWidth:   384,
		ViewportHeight:  640,
		DeadZoneTop:     200,
		DeadZoneBottom:  300,
		FollowSmoothing: 0.12,
	}

	Collision = CollisionConfig{
		TerrainMarginX:     4,
		GroundSensorHeight: 2,
		WallSensorWidth:    4,
		WallSensorMargin:   8,
		BroadphaseCell:     64,
	}

	Interaction = InteractionConfig{
		NPCRadius: 80,
	}

	Input = InputConfig{
		JoystickDeadzoneX: 0.3,
		JoystickDeadzoneY: 0.5,
		SwipeMinDistance:  30,
		PlayerTapRadius:   80,
	}

	Scheduler = SchedulerConfig{
		MaxDelta:         33330 * time.Microsecond, // ~30fps worth of delta
		TicksPerSecond:   60,
		MetricsNamespace: "tower",
	}

	Transition = TransitionConfig{
		Pipe:    800 * time.Millisecond,
		Door:    600 * time.Millisecond,
		Flag:    1000 * time.Millisecond,
		Fall:    500 * time.Millisecond,
		FadeOut: 300 * time.Millisecond,
		FadeIn:  300 * time.Millisecond,
		Slide:   64,
		Drop:    192,
	}

	Notification = NotificationConfig{
		Stat:        2500 * time.Millisecond,
		Badge:       2000 * time.Millisecond,
		Info:        3000 * time.Millisecond,
		Achievement: 4000 * time.Millisecond,
	}

	UI = UIConfig{
		ChargeBarWidth:  48,
		ChargeBarHeight: 6,
		ChargeBarOffset: 8,
		BannerDuration:  2 * time.Second,
		HUDMargin:       8,
	}

	Debug = DebugConfig{}
}
