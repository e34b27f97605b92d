package components

import "github.com/yohamta/donburi"

// ClockData is the singleton frame clock.
type ClockData struct {
	Delta float64 // seconds elapsed since the previous tick
	Frame uint64
}

var Clock = donburi.NewComponentType[ClockData]()
