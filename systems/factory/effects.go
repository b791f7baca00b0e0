package factory

import (
	"github.com/automoto/ringrush/archetypes"
	"github.com/automoto/ringrush/components"
	"github.com/automoto/ringrush/economy"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Spawn creates the transient entity a spawn request asks for. Unknown kinds
// are ignored.
func Spawn(w donburi.World, req economy.SpawnRequest) (*donburi.Entry, bool) {
	switch req.Kind {
	case economy.SpawnDroppedRing:
		return CreateDroppedRing(w, req), true
	case economy.SpawnExplosion:
		return CreateExplosion(w, req), true
	}
	return nil, false
}

// CreateDroppedRing creates a scattered ring. It is kept out of the
// collision space so it can never be picked up again.
func CreateDroppedRing(w donburi.World, req economy.SpawnRequest) *donburi.Entry {
	ring := archetypes.DroppedRing.Spawn(w)
	components.Object.SetValue(ring, components.ObjectData{
		Position: req.Position,
		Half:     mgl64.Vec3{RingHalfExtent, RingHalfExtent, RingHalfExtent},
	})

	// The fade plays over FadeTime; the ring lingers at zero alpha until TTL.
	var fade *gween.Tween
	if req.FadeTime > 0 {
		fade = gween.New(1, 0, float32(req.FadeTime), ease.Linear)
	}
	components.DroppedRing.SetValue(ring, components.DroppedRingData{
		Velocity: req.Velocity,
		Fade:     fade,
		Alpha:    1,
	})
	components.AutoDestroy.SetValue(ring, components.AutoDestroyData{Remaining: req.TTL})
	return ring
}

// CreateExplosion creates a short-lived defeat effect.
func CreateExplosion(w donburi.World, req economy.SpawnRequest) *donburi.Entry {
	fx := archetypes.Effect.Spawn(w)
	components.Object.SetValue(fx, components.ObjectData{Position: req.Position})
	components.AutoDestroy.SetValue(fx, components.AutoDestroyData{Remaining: req.TTL})
	return fx
}
