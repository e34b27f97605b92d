package platform

import (
	cfg "github.com/automoto/fpscore/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Bindings maps each action to the keys that trigger it.
var Bindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveForward:   {ebiten.KeyW, ebiten.KeyUp},
	cfg.ActionMoveBack:      {ebiten.KeyS, ebiten.KeyDown},
	cfg.ActionMoveLeft:      {ebiten.KeyA, ebiten.KeyLeft},
	cfg.ActionMoveRight:     {ebiten.KeyD, ebiten.KeyRight},
	cfg.ActionReleaseCursor: {ebiten.KeyEscape},
}
