package components

import (
	cfg "github.com/automoto/fpscore/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// InputSource is the platform collaborator polled once per tick.
type InputSource interface {
	// PointerDelta is the total pointer motion since the previous poll.
	PointerDelta() mgl64.Vec2
	Pressed(action cfg.ActionID) bool
}

// InputData holds this tick's input snapshot. It is rebuilt every tick.
type InputData struct {
	Source       InputSource
	PointerDelta mgl64.Vec2
	Held         [cfg.ActionCount]bool
}

// Pressed reports whether the action is held this tick.
func (i *InputData) Pressed(action cfg.ActionID) bool {
	if action <= cfg.ActionNone || action >= cfg.ActionCount {
		return false
	}
	return i.Held[action]
}

var Input = donburi.NewComponentType[InputData]()
