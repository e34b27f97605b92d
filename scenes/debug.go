package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/fpscore/components"
	cfg "github.com/automoto/fpscore/config"
	"github.com/automoto/fpscore/shared/gamemath"
	"github.com/automoto/fpscore/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// mapScale is the number of screen pixels per world unit on the overhead map.
const mapScale = 16.0

var (
	wallColor   = color.RGBA{R: 120, G: 120, B: 140, A: 255}
	playerColor = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	facingColor = color.RGBA{R: 255, G: 255, B: 100, A: 255}
)

// drawArena renders an overhead map centred on the player: walls as boxes,
// the player footprint and its horizontal facing.
func drawArena(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	center := components.Transform.Get(playerEntry).Position
	cx, cy := float64(screen.Bounds().Dx())/2, float64(screen.Bounds().Dy())/2
	toScreen := func(x, z float64) (float32, float32) {
		return float32(cx + (x-center.X())*mapScale), float32(cy + (z-center.Z())*mapScale)
	}
	scale := cfg.Physics.SpaceScale
	originX, originZ := float64(cfg.Physics.ArenaWidth)/2, float64(cfg.Physics.ArenaDepth)/2

	tags.Wall.Each(e.World, func(wall *donburi.Entry) {
		obj := components.Object.Get(wall)
		x, y := toScreen(obj.X/scale-originX, obj.Y/scale-originZ)
		vector.DrawFilledRect(screen, x, y, float32(obj.W/scale*mapScale), float32(obj.H/scale*mapScale), wallColor, false)
	})

	body := components.KinematicBody.Get(playerEntry)
	px, py := toScreen(center.X()-body.HalfExtents.X(), center.Z()-body.HalfExtents.Z())
	vector.DrawFilledRect(screen, px, py, float32(body.HalfExtents.X()*2*mapScale), float32(body.HalfExtents.Z()*2*mapScale), playerColor, false)

	ref := components.Player.Get(playerEntry).Orientation
	if !e.World.Valid(ref) {
		return
	}
	source := e.World.Entry(ref)
	if !source.HasComponent(components.Facing) {
		return
	}
	look := components.Facing.Get(source).Rotation().Rotate(gamemath.Forward)
	fx, fy := toScreen(center.X()+look.X()*2, center.Z()+look.Z()*2)
	ox, oy := toScreen(center.X(), center.Z())
	vector.StrokeLine(screen, ox, oy, fx, fy, 2, facingColor, true)
}

func (ws *WorldScene) drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pos := components.Transform.Get(playerEntry).Position
	body := components.KinematicBody.Get(playerEntry)

	var yaw, pitch float64
	if cameraEntry, ok := components.Camera.First(e.World); ok && cameraEntry.HasComponent(components.Facing) {
		facing := components.Facing.Get(cameraEntry)
		yaw, pitch = facing.Yaw, facing.Pitch
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"pos %.2f %.2f %.2f  grounded %v\nyaw %.3f pitch %.3f\ncursor captured %v (Esc toggles)\nTPS %.0f",
		pos.X(), pos.Y(), pos.Z(), body.Grounded,
		yaw, pitch,
		ws.source.Captured(),
		ebiten.ActualTPS(),
	))
}
