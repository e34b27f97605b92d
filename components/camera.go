package components

import (
	cfg "github.com/automoto/fpscore/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	// RotationSource names the one system allowed to write this camera's rotation.
	RotationSource cfg.RotationSource
}

var Camera = donburi.NewComponentType[CameraData]()

// FollowTargetData binds a camera to another entity's position. Target is a
// handle and may outlive the entity it names.
type FollowTargetData struct {
	Target donburi.Entity
	Offset mgl64.Vec3

	// Lost is set while the target cannot be resolved.
	Lost bool
}

var FollowTarget = donburi.NewComponentType[FollowTargetData]()
