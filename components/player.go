package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Orientation is the entity whose Facing steers this player's movement.
	Orientation donburi.Entity
}

var Player = donburi.NewComponentType[PlayerData]()
