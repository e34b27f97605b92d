package factory

import (
	"github.com/automoto/fpscore/archetypes"
	"github.com/automoto/fpscore/components"
	cfg "github.com/automoto/fpscore/config"
	"github.com/automoto/fpscore/logger"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace creates the collision space covering the arena's XZ plane.
func CreateSpace(w donburi.World) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	width := int(float64(cfg.Physics.ArenaWidth) * cfg.Physics.SpaceScale)
	depth := int(float64(cfg.Physics.ArenaDepth) * cfg.Physics.SpaceScale)
	components.Space.Set(space, resolv.NewSpace(width, depth, cfg.Physics.CellSize, cfg.Physics.CellSize))
	logger.L().Debug("collision space created", "width", width, "depth", depth, "cell", cfg.Physics.CellSize)
	return space
}

// ToSpace maps a world X/Z pair onto collision space coordinates. The space
// is centred on the world origin.
func ToSpace(x, z float64) (float64, float64) {
	s := cfg.Physics.SpaceScale
	return (x + float64(cfg.Physics.ArenaWidth)/2) * s, (z + float64(cfg.Physics.ArenaDepth)/2) * s
}

// footprint builds a resolv object covering the XZ extent of a box centred at pos.
func footprint(pos, halfExtents mgl64.Vec3, tags ...string) *resolv.Object {
	x, y := ToSpace(pos.X()-halfExtents.X(), pos.Z()-halfExtents.Z())
	w := halfExtents.X() * 2 * cfg.Physics.SpaceScale
	d := halfExtents.Z() * 2 * cfg.Physics.SpaceScale
	obj := resolv.NewObject(x, y, w, d, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, d))
	return obj
}

func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
