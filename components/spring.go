package components

import "github.com/yohamta/donburi"

type SpringData struct {
	Power float64 // Upward speed given on contact
}

var Spring = donburi.NewComponentType[SpringData]()
