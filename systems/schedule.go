package systems

import "github.com/yohamta/donburi"

// System updates the world once per tick.
type System func(w donburi.World)

// Core is the per-tick order. Locomotion reads the facing that
// UpdateOrientation wrote in the same tick; the follow camera reads the
// position UpdateKinematics just corrected.
var Core = []System{
	UpdateInput,
	UpdateOrientation,
	ApplyOrientation,
	UpdateMoveIntent,
	UpdateLocomotion,
	UpdateKinematics,
	UpdateFollowCamera,
}

// Run advances the clock by dt seconds and runs systems in order.
func Run(w donburi.World, dt float64, systems []System) {
	AdvanceClock(w, dt)
	for _, s := range systems {
		s(w)
	}
}
