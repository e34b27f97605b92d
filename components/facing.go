package components

import (
	"github.com/automoto/fpscore/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// FacingData is a gimbal-safe look orientation. Only UpdateOrientation writes it.
type FacingData struct {
	Yaw         float64    // radians, unbounded
	Pitch       float64    // radians, kept inside the configured pitch limit
	Sensitivity mgl64.Vec2 // radians per unit of pointer motion, per axis
}

// Rotation returns the zero-roll rotation for the current yaw and pitch.
func (f FacingData) Rotation() mgl64.Quat {
	return gamemath.YawPitchRotation(f.Yaw, f.Pitch)
}

var Facing = donburi.NewComponentType[FacingData]()
