package platform

import (
	cfg "github.com/automoto/fpscore/config"
	"github.com/automoto/fpscore/logger"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSource reads the keyboard and the captured cursor through ebiten.
// Call Poll once per tick before the core systems run.
type EbitenSource struct {
	lastX, lastY int
	primed       bool
	delta        mgl64.Vec2
}

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Capture hides and locks the cursor so its motion turns into look input.
func (s *EbitenSource) Capture() {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	s.primed = false
}

// Release gives the cursor back to the desktop.
func (s *EbitenSource) Release() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

// Captured reports whether pointer motion is currently turned into look input.
func (s *EbitenSource) Captured() bool {
	return ebiten.CursorMode() == ebiten.CursorModeCaptured
}

// Poll samples the cursor and handles the capture toggle.
func (s *EbitenSource) Poll() {
	for _, key := range Bindings[cfg.ActionReleaseCursor] {
		if inpututil.IsKeyJustPressed(key) {
			if s.Captured() {
				s.Release()
			} else {
				s.Capture()
			}
			logger.L().Debug("cursor capture toggled", "captured", s.Captured())
			break
		}
	}

	x, y := ebiten.CursorPosition()
	s.delta = mgl64.Vec2{}
	if s.primed && s.Captured() {
		s.delta = mgl64.Vec2{float64(x - s.lastX), float64(y - s.lastY)}
	}
	s.lastX, s.lastY = x, y
	s.primed = true
}

// PointerDelta returns the cursor motion measured by the last Poll. Motion
// while the cursor is released does not turn the view.
func (s *EbitenSource) PointerDelta() mgl64.Vec2 {
	return s.delta
}

// Pressed reports whether any key bound to action is held.
func (s *EbitenSource) Pressed(action cfg.ActionID) bool {
	for _, key := range Bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
