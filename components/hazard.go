package components

import "github.com/yohamta/donburi"

// HazardData is an enemy that hurts on contact unless attacked.
type HazardData struct {
	Size   float64
	Points int // Score for defeating it
}

var Hazard = donburi.NewComponentType[HazardData]()
