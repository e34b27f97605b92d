package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/fpscore/components"
	cfg "github.com/automoto/fpscore/config"
	"github.com/automoto/fpscore/logger"
	"github.com/automoto/fpscore/shared/gamemath"
	"github.com/automoto/fpscore/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	// ErrNoControlledActor means locomotion ran before a player with
	// locomotion state was spawned.
	ErrNoControlledActor = errors.New("no controlled actor with locomotion state")

	// ErrNoOrientation means a player has no live facing to steer by.
	ErrNoOrientation = errors.New("controlled actor has no orientation reference")
)

var playerQuery = donburi.NewQuery(filter.Contains(tags.Player))

// fatal reports a wiring defect and aborts the tick.
func fatal(err error) {
	logger.L().Error("locomotion invariant violated", "error", err)
	panic(err)
}

// UpdateMoveIntent rebuilds each player's intent from the keys held this tick.
func UpdateMoveIntent(w donburi.World) {
	input := currentInput(w)
	intent := IntentFromInput(input)

	eachControlledActor(w, "UpdateMoveIntent", func(e *donburi.Entry) {
		components.MoveIntent.Get(e).Direction = intent
	})
}

// UpdateLocomotion turns each player's intent and facing into a desired
// displacement for the physics collaborator. Must run AFTER UpdateOrientation.
func UpdateLocomotion(w donburi.World) {
	dt := frameDelta(w)

	eachControlledActor(w, "UpdateLocomotion", func(e *donburi.Entry) {
		facing := orientationOf(w, e)
		intent := components.MoveIntent.Get(e).Direction
		components.KinematicBody.Get(e).Request(Move(intent, facing, cfg.Locomotion.Speed, dt))
	})
}

// IntentFromInput sums the held directional keys. Opposing keys cancel.
func IntentFromInput(input *components.InputData) mgl64.Vec3 {
	var d mgl64.Vec3
	if input.Pressed(cfg.ActionMoveRight) {
		d[0] += 1
	}
	if input.Pressed(cfg.ActionMoveLeft) {
		d[0] -= 1
	}
	if input.Pressed(cfg.ActionMoveForward) {
		d[2] += 1
	}
	if input.Pressed(cfg.ActionMoveBack) {
		d[2] -= 1
	}
	return d
}

// Move maps an intent onto the facing's horizontal plane and scales it by
// speed and elapsed seconds.
func Move(intent mgl64.Vec3, facing components.FacingData, speed, dt float64) mgl64.Vec3 {
	forward, right := gamemath.HorizontalBasis(facing.Rotation())
	return gamemath.Displacement(gamemath.MoveDirection(intent, forward, right), speed, dt)
}

func eachControlledActor(w donburi.World, system string, fn func(e *donburi.Entry)) {
	found := 0
	playerQuery.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.MoveIntent) || !e.HasComponent(components.KinematicBody) {
			fatal(fmt.Errorf("%s: %w: entity %v lacks intent or kinematic body", system, ErrNoControlledActor, e.Entity()))
		}
		found++
		fn(e)
	})
	if found == 0 {
		fatal(fmt.Errorf("%s: %w", system, ErrNoControlledActor))
	}
}

func orientationOf(w donburi.World, player *donburi.Entry) components.FacingData {
	ref := components.Player.Get(player).Orientation
	if !w.Valid(ref) {
		fatal(fmt.Errorf("UpdateLocomotion: %w: entity %v", ErrNoOrientation, player.Entity()))
	}
	source := w.Entry(ref)
	if !source.HasComponent(components.Facing) {
		fatal(fmt.Errorf("UpdateLocomotion: %w: entity %v has no facing", ErrNoOrientation, ref))
	}
	return *components.Facing.Get(source)
}
