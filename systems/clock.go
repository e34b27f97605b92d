package systems

import (
	"github.com/automoto/fpscore/components"
	"github.com/yohamta/donburi"
)

// AdvanceClock records the elapsed seconds for the coming tick. Must run
// before the core pipeline.
func AdvanceClock(w donburi.World, dt float64) {
	entry, ok := components.Clock.First(w)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	if dt < 0 {
		dt = 0
	}
	clock.Delta = dt
	clock.Frame++
}

// frameDelta returns this tick's elapsed seconds, or zero without a clock.
func frameDelta(w donburi.World) float64 {
	entry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}
