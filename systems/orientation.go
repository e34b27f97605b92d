package systems

import (
	"github.com/automoto/fpscore/components"
	cfg "github.com/automoto/fpscore/config"
	"github.com/automoto/fpscore/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateOrientation accumulates this tick's pointer motion into every facing.
// The motion is already a per-frame total, so it is not scaled by the clock.
func UpdateOrientation(w donburi.World) {
	delta := currentInput(w).PointerDelta
	limit := cfg.Orientation.PitchLimit()

	components.Facing.Each(w, func(e *donburi.Entry) {
		facing := components.Facing.Get(e)
		facing.Yaw, facing.Pitch = gamemath.Look(facing.Yaw, facing.Pitch, delta, facing.Sensitivity, limit)
	})
}

// ApplyOrientation writes the facing rotation into mouse-look cameras.
// Cameras framed by look-at are left to UpdateFollowCamera.
func ApplyOrientation(w donburi.World) {
	components.Facing.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		if e.HasComponent(components.Camera) && components.Camera.Get(e).RotationSource != cfg.RotationMouseLook {
			return
		}
		components.Transform.Get(e).Rotation = components.Facing.Get(e).Rotation()
	})
}
