package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestHorizontalBasis_IgnoresPitch(t *testing.T) {
	forward, right := HorizontalBasis(YawPitchRotation(0, 1.2))
	approxVec(t, Forward, forward, "forward")
	approxVec(t, Right, right, "right")
}

func TestHorizontalBasis_FollowsYaw(t *testing.T) {
	forward, right := HorizontalBasis(YawPitchRotation(-math.Pi/2, 0.3))
	approxVec(t, mgl64.Vec3{1, 0, 0}, forward, "forward after quarter turn right")
	approxVec(t, mgl64.Vec3{0, 0, 1}, right, "right after quarter turn right")
}

func TestHorizontalBasis_VerticalFacingIsZero(t *testing.T) {
	forward, right := HorizontalBasis(YawPitchRotation(0.4, math.Pi/2))
	assert.Equal(t, mgl64.Vec3{}, forward)
	assert.Equal(t, mgl64.Vec3{}, right)
	for _, v := range append(forward[:], right[:]...) {
		assert.False(t, math.IsNaN(v))
	}
}

func TestMoveDirection(t *testing.T) {
	forward, right := Forward, Right
	diag := 1 / math.Sqrt2

	tests := []struct {
		name   string
		intent mgl64.Vec3
		want   mgl64.Vec3
	}{
		{"idle", mgl64.Vec3{}, mgl64.Vec3{}},
		{"forward", mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, -1}},
		{"back", mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 0, 1}},
		{"strafe right", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 0, 0}},
		{"strafe left", mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{-1, 0, 0}},
		{"diagonal is unit length", mgl64.Vec3{1, 0, 1}, mgl64.Vec3{diag, 0, -diag}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approxVec(t, tt.want, MoveDirection(tt.intent, forward, right), tt.name)
		})
	}
}

func TestMoveDirection_ZeroBasisIsIdle(t *testing.T) {
	got := MoveDirection(mgl64.Vec3{1, 0, 1}, mgl64.Vec3{}, mgl64.Vec3{})
	assert.Equal(t, mgl64.Vec3{}, got)
}

func TestDisplacement_ScalesWithElapsedTime(t *testing.T) {
	full := Displacement(Forward, 5, 1.0/60)
	half := Displacement(Forward, 5, 1.0/120)

	approxVec(t, mgl64.Vec3{0, 0, -5.0 / 60}, full, "full frame")
	assert.InDelta(t, full.Len()/2, half.Len(), tol)
	approxVec(t, full.Normalize(), half.Normalize(), "direction unchanged")
}
