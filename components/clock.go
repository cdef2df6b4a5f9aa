package components

import "github.com/yohamta/donburi"

// ClockData is the scene time base. Delta is the length of the current tick
// and Elapsed the sum of all unpaused ticks, both in seconds.
type ClockData struct {
	Delta   float32
	Elapsed float32
	Ticks   uint64
}

var Clock = donburi.NewComponentType[ClockData]()
