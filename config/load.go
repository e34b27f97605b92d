package config

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// File is the on-disk override format. Absent keys keep their defaults.
type File struct {
	Window      WindowFile      `yaml:"window"`
	Orientation OrientationFile `yaml:"orientation"`
	Locomotion  LocomotionFile  `yaml:"locomotion"`
	Camera      CameraFile      `yaml:"camera"`
	Physics     PhysicsFile     `yaml:"physics"`
	Logging     LoggingFile     `yaml:"logging"`
}

type WindowFile struct {
	Width  *int    `yaml:"width"`
	Height *int    `yaml:"height"`
	Title  *string `yaml:"title"`
}

type OrientationFile struct {
	Sensitivity *[2]float64 `yaml:"sensitivity"`
	PitchMargin *float64    `yaml:"pitch_margin"`
}

type LocomotionFile struct {
	Speed *float64 `yaml:"speed"`
}

type CameraFile struct {
	Offset         *[3]float64 `yaml:"offset"`
	RotationSource *string     `yaml:"rotation_source"`
}

type PhysicsFile struct {
	Gravity      *float64    `yaml:"gravity"`
	MaxFallSpeed *float64    `yaml:"max_fall_speed"`
	FloorHeight  *float64    `yaml:"floor_height"`
	PlayerSpawn  *[3]float64 `yaml:"player_spawn"`
}

type LoggingFile struct {
	Level  *string `yaml:"level"`
	Format *string `yaml:"format"`
}

// Load reads a yaml override file.
func Load(path string) (*File, error) {
	f := &File{}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Apply validates the file and copies every present value over the globals.
// Nothing is applied when validation fails.
func (f *File) Apply() error {
	var source *RotationSource
	if f.Camera.RotationSource != nil {
		s, err := ParseRotationSource(*f.Camera.RotationSource)
		if err != nil {
			return fmt.Errorf("camera.rotation_source: %w", err)
		}
		source = &s
	}
	if f.Orientation.PitchMargin != nil && (*f.Orientation.PitchMargin <= 0 || *f.Orientation.PitchMargin >= 1) {
		return fmt.Errorf("orientation.pitch_margin must be in (0, 1), got %v", *f.Orientation.PitchMargin)
	}
	if f.Locomotion.Speed != nil && *f.Locomotion.Speed < 0 {
		return fmt.Errorf("locomotion.speed must not be negative, got %v", *f.Locomotion.Speed)
	}

	if f.Window.Width != nil {
		Window.Width = *f.Window.Width
	}
	if f.Window.Height != nil {
		Window.Height = *f.Window.Height
	}
	if f.Window.Title != nil {
		Window.Title = *f.Window.Title
	}

	if f.Orientation.Sensitivity != nil {
		Orientation.Sensitivity = mgl64.Vec2(*f.Orientation.Sensitivity)
	}
	if f.Orientation.PitchMargin != nil {
		Orientation.PitchMargin = *f.Orientation.PitchMargin
	}

	if f.Locomotion.Speed != nil {
		Locomotion.Speed = *f.Locomotion.Speed
	}

	if f.Camera.Offset != nil {
		Camera.Offset = mgl64.Vec3(*f.Camera.Offset)
	}
	if source != nil {
		Camera.RotationSource = *source
	}

	if f.Physics.Gravity != nil {
		Physics.Gravity = *f.Physics.Gravity
	}
	if f.Physics.MaxFallSpeed != nil {
		Physics.MaxFallSpeed = *f.Physics.MaxFallSpeed
	}
	if f.Physics.FloorHeight != nil {
		Physics.FloorHeight = *f.Physics.FloorHeight
	}
	if f.Physics.PlayerSpawn != nil {
		Physics.PlayerSpawn = mgl64.Vec3(*f.Physics.PlayerSpawn)
	}

	if f.Logging.Level != nil {
		Logging.Level = *f.Logging.Level
	}
	if f.Logging.Format != nil {
		Logging.Format = *f.Logging.Format
	}
	return nil
}
