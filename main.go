package main

import (
	"errors"
	"flag"
	"image"
	"io/fs"
	"os"

	"github.com/automoto/fpscore/config"
	"github.com/automoto/fpscore/logger"
	"github.com/automoto/fpscore/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewWorldScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Window.Width, config.Window.Height)
	return config.Window.Width, config.Window.Height
}

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the yaml config overrides")
	flag.Parse()

	// Overrides are applied before the logger exists so logging.* takes effect.
	file, loadErr := config.Load(*configPath)
	var applyErr error
	if loadErr == nil {
		applyErr = file.Apply()
	}

	logger.Init(logger.Config{
		Level:  config.Logging.Level,
		Format: config.Logging.Format,
	})
	log := logger.L()

	switch {
	case errors.Is(loadErr, fs.ErrNotExist):
		log.Warn("config file not found, using defaults", "path", *configPath)
	case loadErr != nil:
		log.Error("failed to read config", "path", *configPath, "error", loadErr)
		os.Exit(1)
	case applyErr != nil:
		log.Error("invalid config", "path", *configPath, "error", applyErr)
		os.Exit(1)
	default:
		log.Info("config loaded", "path", *configPath)
	}

	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Error("game exited with error", "error", err)
		os.Exit(1)
	}
}
