// Package homing picks the target of an airborne homing attack.
package homing

import (
	"github.com/automoto/ringrush/collision"
	"github.com/automoto/ringrush/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Candidate is a read-only view of a potential target, captured once per
// tick. The selector never keeps candidates past the call.
type Candidate struct {
	Handle   donburi.Entity
	Position mgl64.Vec3
	Alive    bool
}

// Params bounds the search.
type Params struct {
	Range      float64
	AngleLimit float64 // Half-angle of the forward cone, degrees
	MinDist    float64
}

// Select returns the nearest candidate that is alive, within range, inside
// the forward cone and in line of sight. Exact distance ties keep the
// candidate that appears first in the slice. ignore is passed through to the
// line-of-sight ray.
func Select(candidates []Candidate, origin, forward mgl64.Vec3, p Params, los collision.Provider, ignore ...donburi.Entity) (Candidate, bool) {
	fwd, ok := gamemath.SafeNormalize(forward)
	if !ok {
		return Candidate{}, false
	}

	var best Candidate
	found := false
	bestDistSq := p.Range * p.Range
	minDistSq := p.MinDist * p.MinDist

	for _, c := range candidates {
		if !c.Alive {
			continue
		}
		toTarget := c.Position.Sub(origin)
		distSq := toTarget.LenSqr()
		if distSq >= p.Range*p.Range || distSq < minDistSq {
			continue
		}
		if found && distSq >= bestDistSq {
			continue
		}
		dir, ok := gamemath.SafeNormalize(toTarget)
		if !ok {
			continue
		}
		if gamemath.AngleBetween(fwd, dir) >= p.AngleLimit {
			continue
		}
		if !inSight(los, origin, dir, toTarget.Len(), c.Handle, ignore) {
			continue
		}
		best = c
		bestDistSq = distSq
		found = true
	}
	return best, found
}

// inSight accepts a clear ray or one whose first hit is the target itself.
func inSight(los collision.Provider, origin, dir mgl64.Vec3, dist float64, target donburi.Entity, ignore []donburi.Entity) bool {
	if los == nil {
		return true
	}
	hit := los.Raycast(origin, dir, dist, ignore...)
	return !hit.Hit || hit.Entity == target
}
