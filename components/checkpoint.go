package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type CheckpointData struct {
	CheckpointID int
	Activated    bool
	Position     mgl64.Vec3 // Base position; the respawn point sits above it
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
