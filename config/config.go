package config

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotationSource selects which system owns a camera's rotation.
type RotationSource int

const (
	// RotationMouseLook drives the camera from the accumulated yaw/pitch facing.
	RotationMouseLook RotationSource = iota
	// RotationLookAt points the camera at its follow target every tick.
	RotationLookAt
)

func (s RotationSource) String() string {
	switch s {
	case RotationMouseLook:
		return "mouse_look"
	case RotationLookAt:
		return "look_at"
	default:
		return fmt.Sprintf("RotationSource(%d)", int(s))
	}
}

// ParseRotationSource maps a config string onto a RotationSource.
func ParseRotationSource(s string) (RotationSource, error) {
	switch s {
	case "mouse_look":
		return RotationMouseLook, nil
	case "look_at":
		return RotationLookAt, nil
	default:
		return 0, fmt.Errorf("unknown rotation source %q", s)
	}
}

// WindowConfig holds general window configuration
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// OrientationConfig contains mouse-look configuration values
type OrientationConfig struct {
	// Radians of rotation per unit of pointer motion
	Sensitivity mgl64.Vec2

	// Distance kept between the pitch limit and straight up/down
	PitchMargin float64
}

// PitchLimit is the largest pitch magnitude a facing may hold.
func (o OrientationConfig) PitchLimit() float64 {
	return math.Pi/2 - o.PitchMargin
}

// LocomotionConfig contains player movement configuration values
type LocomotionConfig struct {
	Speed float64 // world units per second
}

// CameraConfig contains follow camera configuration values
type CameraConfig struct {
	Offset         mgl64.Vec3
	RotationSource RotationSource
}

// PhysicsConfig contains kinematic body configuration values
type PhysicsConfig struct {
	Gravity      float64 // units per second squared
	MaxFallSpeed float64
	FloorHeight  float64

	// Player body half extents
	PlayerHalfWidth  float64
	PlayerHalfHeight float64
	PlayerHalfDepth  float64

	// Collision space covering the XZ plane, centred on the origin.
	// Arena sizes are world units; the space itself works in SpaceScale
	// units per world unit.
	ArenaWidth  int
	ArenaDepth  int
	SpaceScale  float64
	CellSize    int // space units
	PlayerSpawn mgl64.Vec3
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level  string
	Format string
}

// Global configuration instances
var (
	Window      WindowConfig
	Orientation OrientationConfig
	Locomotion  LocomotionConfig
	Camera      CameraConfig
	Physics     PhysicsConfig
	Logging     LoggingConfig
)

func init() {
	Reset()
}

// Reset restores every global configuration value to its default.
func Reset() {
	Window = WindowConfig{
		Width:  1280,
		Height: 720,
		Title:  "fpscore",
	}

	Orientation = OrientationConfig{
		Sensitivity: mgl64.Vec2{0.003, 0.002},
		PitchMargin: 0.01,
	}

	Locomotion = LocomotionConfig{
		Speed: 5.0,
	}

	Camera = CameraConfig{
		Offset:         mgl64.Vec3{0, 0, 0},
		RotationSource: RotationMouseLook,
	}

	Physics = PhysicsConfig{
		Gravity:      9.81,
		MaxFallSpeed: 50.0,
		FloorHeight:  0.0,

		PlayerHalfWidth:  0.5,
		PlayerHalfHeight: 1.0,
		PlayerHalfDepth:  0.5,

		ArenaWidth:  256,
		ArenaDepth:  256,
		SpaceScale:  16,
		CellSize:    16,
		PlayerSpawn: mgl64.Vec3{0, 20, 0},
	}

	Logging = LoggingConfig{
		Level:  "info",
		Format: "console",
	}
}
