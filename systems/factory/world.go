package factory

import (
	"github.com/automoto/fpscore/archetypes"
	"github.com/automoto/fpscore/components"
	"github.com/yohamta/donburi"
)

// CreateClock creates the singleton frame clock.
func CreateClock(w donburi.World) *donburi.Entry {
	return archetypes.Clock.Spawn(w)
}

// CreateInput creates the singleton input snapshot fed by source.
func CreateInput(w donburi.World, source components.InputSource) *donburi.Entry {
	input := archetypes.Input.Spawn(w)
	components.Input.Get(input).Source = source
	return input
}
