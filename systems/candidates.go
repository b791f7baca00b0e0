package systems

import (
	"github.com/automoto/ringrush/components"
	"github.com/automoto/ringrush/homing"
	"github.com/yohamta/donburi"
)

// HomingCandidates snapshots every hazard as a homing candidate. buf is
// reused when it has room.
func HomingCandidates(w donburi.World, buf []homing.Candidate) []homing.Candidate {
	out := buf[:0]
	components.Hazard.Each(w, func(e *donburi.Entry) {
		out = append(out, homing.Candidate{
			Handle:   e.Entity(),
			Position: components.Object.Get(e).Position,
			Alive:    e.Valid(),
		})
	})
	return out
}
