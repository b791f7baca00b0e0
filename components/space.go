package components

import (
	"github.com/automoto/ringrush/collision"
	"github.com/yohamta/donburi"
)

var Space = donburi.NewComponentType[collision.Space]()
