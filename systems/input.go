package systems

import (
	"github.com/automoto/fpscore/components"
	cfg "github.com/automoto/fpscore/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// UpdateInput polls the input source and rebuilds the input snapshot.
// Must run BEFORE UpdateOrientation and UpdateMoveIntent.
func UpdateInput(w donburi.World) {
	entry, ok := components.Input.First(w)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	input.PointerDelta = mgl64.Vec2{}
	input.Held = [cfg.ActionCount]bool{}
	if input.Source == nil {
		return
	}

	input.PointerDelta = input.Source.PointerDelta()
	for action := cfg.ActionNone + 1; action < cfg.ActionCount; action++ {
		input.Held[action] = input.Source.Pressed(action)
	}
}

// currentInput returns this tick's snapshot, or an empty one when no input
// entity exists.
func currentInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		return &components.InputData{}
	}
	return components.Input.Get(entry)
}
