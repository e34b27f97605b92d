package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's footprint in the collision space. Space X maps
// to world X and space Y maps to world Z.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space.
var Space = donburi.NewComponentType[resolv.Space]()
