package components

import (
	"github.com/automoto/ringrush/camera"
	"github.com/yohamta/donburi"
)

var Camera = donburi.NewComponentType[camera.Rig]()
