package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhysicsConfig contains physics-related configuration values. Speeds are in
// world units per second, y points up.
type PhysicsConfig struct {
	DeltaPerInch float64 `yaml:"delta_per_inch"` // Largest single step while inching
	Gravity      float64 `yaml:"gravity"`        // Units/s² applied to players
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	TickRate     int     `yaml:"tick_rate"` // Fixed ticks per second
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MoveSpeed    float64 `yaml:"move_speed"`
	Acceleration float64 `yaml:"acceleration"` // Units/s² toward MoveSpeed
	JumpSpeed    float64 `yaml:"jump_speed"`
	SafeRadius   float64 `yaml:"safe_radius"` // Search radius for respawn ground
}

// BulletTimeConfig controls the demo's slow-motion key
type BulletTimeConfig struct {
	Seconds float64 `yaml:"seconds"`
}

// ServerConfig contains headless server settings
type ServerConfig struct {
	Port  uint   `yaml:"port"`
	Level string `yaml:"level"`
}

// TermConfig contains terminal viewer settings
type TermConfig struct {
	CellSize float64 `yaml:"cell_size"` // World units per terminal cell
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawHitboxes    bool `yaml:"draw_hitboxes"`
	SkipPersistence bool `yaml:"skip_persistence"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var BulletTime BulletTimeConfig
var Server ServerConfig
var Term TermConfig
var Debug DebugConfig

// Debug draw colors
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Backdrop  = color.RGBA{R: 20, G: 22, B: 30, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "boxcollide",
	}

	Physics = PhysicsConfig{
		DeltaPerInch: 1.0,
		Gravity:      -1800.0,
		MaxFallSpeed: 900.0,
		TickRate:     60,
	}

	Player = PlayerConfig{
		Width:        36,
		Height:       36,
		MoveSpeed:    240.0,
		Acceleration: 2400.0,
		JumpSpeed:    720.0,
		SafeRadius:   240.0,
	}

	BulletTime = BulletTimeConfig{
		Seconds: 2.0,
	}

	Server = ServerConfig{
		Port:  7373,
		Level: "demo",
	}

	Term = TermConfig{
		CellSize: 12.0,
	}
}
