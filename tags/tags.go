package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Platform    = donburi.NewTag().SetName("Platform")
	Ring        = donburi.NewTag().SetName("Ring")
	DroppedRing = donburi.NewTag().SetName("DroppedRing")
	Hazard      = donburi.NewTag().SetName("Hazard")
	Spring      = donburi.NewTag().SetName("Spring")
	Checkpoint  = donburi.NewTag().SetName("Checkpoint")
	Effect      = donburi.NewTag().SetName("Effect")
)

// Resolv tags for the collision space
const (
	ResolvSolid      = "solid"
	ResolvRing       = "ring"
	ResolvHazard     = "hazard"
	ResolvSpring     = "spring"
	ResolvCheckpoint = "checkpoint"
)

// Blockers are the resolv tags that stop rays and ground probes.
var Blockers = []string{ResolvSolid, ResolvHazard, ResolvSpring}
