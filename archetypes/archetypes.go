package archetypes

import (
	"github.com/automoto/fpscore/components"
	"github.com/automoto/fpscore/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.MoveIntent,
		components.KinematicBody,
		components.Object,
	)
	Camera = newArchetype(
		components.Camera,
		components.Transform,
		components.Facing,
		components.FollowTarget,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType{}, a.components...), cs...)
	return w.Entry(w.Create(all...))
}
