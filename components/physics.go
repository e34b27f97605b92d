package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// KinematicBodyData is the physics collaborator's per-body state.
type KinematicBodyData struct {
	// Translation is the desired displacement for this tick. The physics
	// system consumes it and resets it to nil.
	Translation *mgl64.Vec3

	HalfExtents   mgl64.Vec3
	VerticalSpeed float64
	Grounded      bool
}

// Request replaces this tick's desired displacement.
func (k *KinematicBodyData) Request(d mgl64.Vec3) {
	k.Translation = &d
}

var KinematicBody = donburi.NewComponentType[KinematicBodyData]()
