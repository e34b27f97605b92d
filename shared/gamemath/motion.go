package gamemath

import "github.com/go-gl/mathgl/mgl64"

// HorizontalBasis projects the rotation's forward direction onto the ground
// plane. A vertical facing has no horizontal projection and yields zero
// vectors rather than NaN.
func HorizontalBasis(rotation mgl64.Quat) (forward, right mgl64.Vec3) {
	f := rotation.Rotate(Forward)
	f[1] = 0
	if f.Len() < degenerateLength {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}
	forward = f.Normalize()
	right = forward.Cross(Up)
	return forward, right
}

// MoveDirection maps an intent (x = strafe right, z = forward) onto the
// horizontal basis and normalises it. A zero intent gives a zero direction.
func MoveDirection(intent, forward, right mgl64.Vec3) mgl64.Vec3 {
	d := forward.Mul(intent.Z()).Add(right.Mul(intent.X()))
	if d.Len() < degenerateLength {
		return mgl64.Vec3{}
	}
	return d.Normalize()
}

// Displacement scales a unit direction by speed and elapsed seconds.
func Displacement(direction mgl64.Vec3, speed, dt float64) mgl64.Vec3 {
	return direction.Mul(speed * dt)
}
