package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World axes. Forward is -Z, the direction an unrotated camera looks.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Right   = mgl64.Vec3{1, 0, 0}
	Forward = mgl64.Vec3{0, 0, -1}
)

// degenerateLength is the length below which a direction is treated as zero.
const degenerateLength = 1e-9

// Look applies one frame of accumulated pointer motion to a yaw/pitch pair.
// The delta is already a per-frame total and is not scaled by elapsed time.
// Pitch is clamped to [-pitchLimit, pitchLimit]; yaw accumulates unbounded.
func Look(yaw, pitch float64, delta, sensitivity mgl64.Vec2, pitchLimit float64) (float64, float64) {
	if delta[0] == 0 && delta[1] == 0 {
		return yaw, pitch
	}

	yaw += -delta.X() * sensitivity.X()
	pitch = mgl64.Clamp(pitch+(-delta.Y()*sensitivity.Y()), -pitchLimit, pitchLimit)
	return yaw, pitch
}

// YawPitchRotation composes yaw about world up, then pitch about the yawed
// right axis, with zero roll.
func YawPitchRotation(yaw, pitch float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, Up).Mul(mgl64.QuatRotate(pitch, Right))
}

// LookRotation returns the zero-roll rotation that points Forward from eye
// toward target. ok is false when the direction is zero or parallel to Up,
// where no unique rotation exists.
func LookRotation(eye, target mgl64.Vec3) (q mgl64.Quat, ok bool) {
	dir := target.Sub(eye)
	if dir.Len() < degenerateLength {
		return mgl64.QuatIdent(), false
	}
	dir = dir.Normalize()

	horizontal := math.Hypot(dir.X(), dir.Z())
	if horizontal < degenerateLength {
		return mgl64.QuatIdent(), false
	}

	yaw := math.Atan2(-dir.X(), -dir.Z())
	pitch := math.Asin(mgl64.Clamp(dir.Y(), -1, 1))
	return YawPitchRotation(yaw, pitch), true
}
