package factory

import (
	"github.com/automoto/fpscore/archetypes"
	"github.com/automoto/fpscore/components"
	"github.com/automoto/fpscore/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CreateWall creates a solid box obstacle spanning min..max on the XZ plane.
// Walls are infinitely tall as far as the kinematic collaborator is concerned.
func CreateWall(w donburi.World, min, max mgl64.Vec3) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	center := min.Add(max).Mul(0.5)
	half := max.Sub(min).Mul(0.5)
	obj := footprint(center, half, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return wall
}
