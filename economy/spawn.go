package economy

import (
	"math"
	"math/rand"

	"github.com/automoto/ringrush/config"
	"github.com/go-gl/mathgl/mgl64"
)

// SpawnKind identifies the transient entity a SpawnRequest asks for.
type SpawnKind int

const (
	SpawnDroppedRing SpawnKind = iota
	SpawnExplosion
)

func (k SpawnKind) String() string {
	switch k {
	case SpawnDroppedRing:
		return "dropped_ring"
	case SpawnExplosion:
		return "explosion"
	}
	return "unknown"
}

// SpawnRequest asks the world to create a short-lived entity. The resolver
// does not track what the world does with it.
type SpawnRequest struct {
	Kind     SpawnKind
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	TTL      float64 // Seconds until removal
	FadeTime float64 // Seconds to fade out, zero for no fade
}

// scatterRings builds one request per lost ring, thrown outward on a random
// heading with a random upward kick.
func scatterRings(rng *rand.Rand, n int, at mgl64.Vec3, cfg config.EconomyConfig) []SpawnRequest {
	origin := at.Add(mgl64.Vec3{0, cfg.DropOffsetY, 0})
	out := make([]SpawnRequest, 0, n)
	for i := 0; i < n; i++ {
		angle := mgl64.DegToRad(rng.Float64() * 360)
		speed := uniform(rng, cfg.DropMinSpeed, cfg.DropMaxSpeed)
		up := uniform(rng, cfg.DropMinUpSpeed, cfg.DropMaxUpSpeed)
		out = append(out, SpawnRequest{
			Kind:     SpawnDroppedRing,
			Position: origin,
			Velocity: mgl64.Vec3{math.Cos(angle) * speed, up, math.Sin(angle) * speed},
			TTL:      cfg.DropTTL,
			FadeTime: cfg.DropFadeTime,
		})
	}
	return out
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
