package factory

import (
	"github.com/automoto/fpscore/archetypes"
	"github.com/automoto/fpscore/components"
	cfg "github.com/automoto/fpscore/config"
	"github.com/automoto/fpscore/logger"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CreateCamera spawns a camera following target at offset. When target is a
// player, the player's movement is bound to this camera's facing.
func CreateCamera(w donburi.World, target *donburi.Entry, offset mgl64.Vec3, source cfg.RotationSource) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)

	pos := offset
	if target != nil && target.HasComponent(components.Transform) {
		pos = components.Transform.Get(target).Position.Add(offset)
	}

	components.Transform.SetValue(camera, components.TransformData{
		Position: pos,
		Rotation: mgl64.QuatIdent(),
	})
	components.Camera.SetValue(camera, components.CameraData{RotationSource: source})
	components.Facing.SetValue(camera, components.FacingData{
		Sensitivity: cfg.Orientation.Sensitivity,
	})

	follow := components.FollowTargetData{Target: donburi.Null, Offset: offset}
	if target != nil {
		follow.Target = target.Entity()
		if target.HasComponent(components.Player) {
			components.Player.Get(target).Orientation = camera.Entity()
		}
	}
	components.FollowTarget.SetValue(camera, follow)

	logger.L().Debug("camera spawned",
		"entity", camera.Entity(),
		"target", follow.Target,
		"rotation_source", source.String(),
	)
	return camera
}
