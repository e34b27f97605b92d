package systems

import (
	"testing"

	"github.com/automoto/fpscore/components"
	cfg "github.com/automoto/fpscore/config"
	"github.com/automoto/fpscore/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateKinematics_ConsumesRequest(t *testing.T) {
	tw := newTestWorld(t)
	player, _ := tw.spawn(grounded(0, 0), mgl64.Vec3{}, cfg.RotationMouseLook)

	components.KinematicBody.Get(player).Request(mgl64.Vec3{0.25, 0, -0.5})
	tw.tick(UpdateKinematics)

	assert.Nil(t, components.KinematicBody.Get(player).Translation)
	approxVec(t, grounded(0.25, -0.5), components.Transform.Get(player).Position)

	tw.tick(UpdateKinematics)
	approxVec(t, grounded(0.25, -0.5), components.Transform.Get(player).Position, "no request, no motion")
}

func TestUpdateKinematics_KeepsFootprintInStep(t *testing.T) {
	tw := newTestWorld(t)
	player, _ := tw.spawn(grounded(0, 0), mgl64.Vec3{}, cfg.RotationMouseLook)

	components.KinematicBody.Get(player).Request(mgl64.Vec3{2, 0, 3})
	tw.tick(UpdateKinematics)

	obj := components.Object.Get(player)
	x, y := factory.ToSpace(2-cfg.Physics.PlayerHalfWidth, 3-cfg.Physics.PlayerHalfDepth)
	assert.InDelta(t, x, obj.X, 1e-9)
	assert.InDelta(t, y, obj.Y, 1e-9)
}

func TestUpdateKinematics_WallStopsPlayer(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateWall(tw.w, mgl64.Vec3{-1, 0, -3.5}, mgl64.Vec3{1, 0, -2.5})
	player, _ := tw.spawn(grounded(0, 0), mgl64.Vec3{}, cfg.RotationMouseLook)

	tw.source.hold(cfg.ActionMoveForward)
	for i := 0; i < 120; i++ {
		tw.tick(append(locomotionSystems, UpdateKinematics)...)
	}

	pos := components.Transform.Get(player).Position
	assert.InDelta(t, -2.5+cfg.Physics.PlayerHalfDepth, pos.Z(), 1e-3, "should rest against the wall face")
	assert.GreaterOrEqual(t, pos.Z(), -2.5+cfg.Physics.PlayerHalfDepth-1e-9, "must not enter the wall")
	assert.Equal(t, 0.0, pos.X())
}

func TestUpdateKinematics_SlidesAlongWall(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateWall(tw.w, mgl64.Vec3{-10, 0, -3.5}, mgl64.Vec3{10, 0, -2.5})
	player, _ := tw.spawn(grounded(0, -1.9), mgl64.Vec3{}, cfg.RotationMouseLook)

	components.KinematicBody.Get(player).Request(mgl64.Vec3{1, 0, -1})
	tw.tick(UpdateKinematics)

	pos := components.Transform.Get(player).Position
	assert.InDelta(t, 1.0, pos.X(), 1e-9, "free axis keeps its full motion")
	assert.InDelta(t, -2.0, pos.Z(), 1e-3, "blocked axis stops at the face")
}

func TestUpdateKinematics_WallBesidePathDoesNotBlock(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateWall(tw.w, mgl64.Vec3{3, 0, -0.5}, mgl64.Vec3{4, 0, 0.5})
	player, _ := tw.spawn(grounded(0, 0), mgl64.Vec3{}, cfg.RotationMouseLook)

	components.KinematicBody.Get(player).Request(mgl64.Vec3{0, 0, -2})
	tw.tick(UpdateKinematics)

	approxVec(t, grounded(0, -2), components.Transform.Get(player).Position)
}

func TestUpdateKinematics_GravityLandsOnFloor(t *testing.T) {
	tw := newTestWorld(t)
	player, _ := tw.spawn(mgl64.Vec3{0, 20, 0}, mgl64.Vec3{}, cfg.RotationMouseLook)
	body := components.KinematicBody.Get(player)

	tw.tick(UpdateKinematics)
	assert.False(t, body.Grounded)
	assert.Less(t, components.Transform.Get(player).Position.Y(), 20.0)

	for i := 0; i < 300; i++ {
		tw.tick(UpdateKinematics)
	}
	assert.True(t, body.Grounded)
	assert.Equal(t, 0.0, body.VerticalSpeed)
	assert.Equal(t, cfg.Physics.FloorHeight+cfg.Physics.PlayerHalfHeight, components.Transform.Get(player).Position.Y())
}

func TestUpdateKinematics_FallSpeedIsCapped(t *testing.T) {
	tw := newTestWorld(t)
	cfg.Physics.MaxFallSpeed = 2
	player, _ := tw.spawn(mgl64.Vec3{0, 1000, 0}, mgl64.Vec3{}, cfg.RotationMouseLook)

	for i := 0; i < 120; i++ {
		tw.tick(UpdateKinematics)
	}
	assert.Equal(t, -2.0, components.KinematicBody.Get(player).VerticalSpeed)
}

func TestResolveAxis_WithoutSpacePassesThrough(t *testing.T) {
	obj := resolv.NewObject(0, 0, 16, 16)
	require.Nil(t, obj.Space)

	assert.Equal(t, 5.0, resolveAxis(obj, 5, true))
	assert.Equal(t, -5.0, resolveAxis(obj, -5, false))
}
