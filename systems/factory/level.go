package factory

import (
	cfg "github.com/automoto/fpscore/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// boundaryThickness is the depth of the walls ringing the arena.
const boundaryThickness = 1.0

// CreateArena builds the collision space, a wall ring along the arena edge
// and a few obstacles near the spawn point. It returns the space entry.
func CreateArena(w donburi.World) *donburi.Entry {
	space := CreateSpace(w)

	hw := float64(cfg.Physics.ArenaWidth)/2 - boundaryThickness
	hd := float64(cfg.Physics.ArenaDepth)/2 - boundaryThickness
	t := boundaryThickness

	// North, south, west, east
	CreateWall(w, mgl64.Vec3{-hw, 0, -hd - t}, mgl64.Vec3{hw, 0, -hd})
	CreateWall(w, mgl64.Vec3{-hw, 0, hd}, mgl64.Vec3{hw, 0, hd + t})
	CreateWall(w, mgl64.Vec3{-hw - t, 0, -hd - t}, mgl64.Vec3{-hw, 0, hd + t})
	CreateWall(w, mgl64.Vec3{hw, 0, -hd - t}, mgl64.Vec3{hw + t, 0, hd + t})

	// Obstacles in front of and beside the spawn point
	CreateWall(w, mgl64.Vec3{-1.0, 0, -3.5}, mgl64.Vec3{1.0, 0, -2.5})
	CreateWall(w, mgl64.Vec3{3.0, 0, -0.5}, mgl64.Vec3{4.0, 0, 0.5})

	return space
}
