package systems

import (
	"github.com/automoto/fpscore/components"
	cfg "github.com/automoto/fpscore/config"
	"github.com/automoto/fpscore/logger"
	"github.com/automoto/fpscore/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var followQuery = donburi.NewQuery(filter.Contains(
	components.FollowTarget,
	components.Transform,
))

// UpdateFollowCamera keeps every bound camera at its target's position plus
// offset. Look-at cameras are also turned toward the target. A target that
// no longer exists is skipped for the tick and the camera keeps its last
// placement.
func UpdateFollowCamera(w donburi.World) {
	followQuery.Each(w, func(e *donburi.Entry) {
		follow := components.FollowTarget.Get(e)

		target, ok := resolveTransform(w, follow.Target)
		if !ok {
			if !follow.Lost {
				logger.L().Debug("follow target unavailable", "camera", e.Entity(), "target", follow.Target)
				follow.Lost = true
			}
			return
		}
		follow.Lost = false

		camera := components.Transform.Get(e)
		camera.Position = target.Position.Add(follow.Offset)

		if !e.HasComponent(components.Camera) || components.Camera.Get(e).RotationSource != cfg.RotationLookAt {
			return
		}
		if rotation, ok := gamemath.LookRotation(camera.Position, target.Position); ok {
			camera.Rotation = rotation
		}
	})
}

// resolveTransform looks up an entity's transform by handle. ok is false
// when the entity has been removed or never had a transform.
func resolveTransform(w donburi.World, entity donburi.Entity) (components.TransformData, bool) {
	if !w.Valid(entity) {
		return components.TransformData{}, false
	}
	entry := w.Entry(entity)
	if !entry.HasComponent(components.Transform) {
		return components.TransformData{}, false
	}
	return *components.Transform.Get(entry), true
}
