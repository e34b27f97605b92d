package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// MoveIntentData is the raw held-key direction in actor-local axes:
// x = strafe (+1 right), z = forward (+1 forward). Not normalised.
type MoveIntentData struct {
	Direction mgl64.Vec3
}

var MoveIntent = donburi.NewComponentType[MoveIntentData]()
