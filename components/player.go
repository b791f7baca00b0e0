package components

import (
	"github.com/automoto/ringrush/character"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *character.Controller
}

var Player = donburi.NewComponentType[PlayerData]()
