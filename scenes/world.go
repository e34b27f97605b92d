package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/fpscore/components"
	cfg "github.com/automoto/fpscore/config"
	"github.com/automoto/fpscore/logger"
	"github.com/automoto/fpscore/platform"
	"github.com/automoto/fpscore/systems"
	"github.com/automoto/fpscore/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = iota

// WorldScene runs the first-person controller over a walled arena.
type WorldScene struct {
	ecs    *ecs.ECS
	source *platform.EbitenSource
	once   sync.Once
}

func NewWorldScene() *WorldScene {
	return &WorldScene{source: platform.NewEbitenSource()}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.source.Poll()
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// The clock must advance before the core pipeline reads it.
	e.AddSystem(func(e *ecs.ECS) {
		systems.AdvanceClock(e.World, 1/float64(ebiten.TPS()))
	})
	for _, s := range systems.Core {
		e.AddSystem(adapt(s))
	}

	e.AddRenderer(layerDefault, drawArena)
	e.AddRenderer(layerDefault, ws.drawHUD)

	ws.ecs = e

	// Spawn order matters: the player must exist before the camera binds to it.
	factory.CreateClock(e.World)
	factory.CreateInput(e.World, ws.source)
	factory.CreateArena(e.World)
	player := factory.CreatePlayer(e.World, cfg.Physics.PlayerSpawn)
	factory.CreateCamera(e.World, player, cfg.Camera.Offset, cfg.Camera.RotationSource)

	ws.source.Capture()
	logger.L().Info("world ready",
		"spawn", cfg.Physics.PlayerSpawn,
		"rotation_source", cfg.Camera.RotationSource.String(),
		"player", player.Entity(),
		"camera_bound", components.Player.Get(player).Orientation != donburi.Null,
	)
}

func adapt(s systems.System) ecs.System {
	return func(e *ecs.ECS) {
		s(e.World)
	}
}
