package factory

import (
	"github.com/automoto/fpscore/archetypes"
	"github.com/automoto/fpscore/components"
	cfg "github.com/automoto/fpscore/config"
	"github.com/automoto/fpscore/logger"
	"github.com/automoto/fpscore/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the controlled actor. Its orientation reference stays
// unset until a camera is bound with CreateCamera.
func CreatePlayer(w donburi.World, pos mgl64.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	half := mgl64.Vec3{cfg.Physics.PlayerHalfWidth, cfg.Physics.PlayerHalfHeight, cfg.Physics.PlayerHalfDepth}

	components.Transform.SetValue(player, components.TransformData{
		Position: pos,
		Rotation: mgl64.QuatIdent(),
	})
	components.Player.SetValue(player, components.PlayerData{Orientation: donburi.Null})
	components.KinematicBody.SetValue(player, components.KinematicBodyData{HalfExtents: half})

	obj := footprint(pos, half, "character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	logger.L().Debug("player spawned", "entity", player.Entity(), "position", pos)
	return player
}
