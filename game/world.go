package game

import (
	"log"

	"github.com/automoto/ringrush/economy"
	"github.com/automoto/ringrush/systems"
	"github.com/automoto/ringrush/systems/factory"
	"github.com/yohamta/donburi"
)

// World is the spawn collaborator the coordinator hands spawn requests to.
type World interface {
	Spawn(req economy.SpawnRequest) donburi.Entity
	Destroy(e donburi.Entity)
}

// ECSWorld is a World backed by a donburi world built by the factory.
type ECSWorld struct {
	w donburi.World
}

// NewECSWorld wraps w.
func NewECSWorld(w donburi.World) *ECSWorld {
	return &ECSWorld{w: w}
}

// Spawn creates the entity for req. Unknown kinds are logged and yield the
// zero entity.
func (e *ECSWorld) Spawn(req economy.SpawnRequest) donburi.Entity {
	entry, ok := factory.Spawn(e.w, req)
	if !ok {
		log.Printf("spawn: unknown request kind %v", req.Kind)
		var none donburi.Entity
		return none
	}
	return entry.Entity()
}

// Destroy removes an entity from the collision space and the world. Stale
// handles are ignored.
func (e *ECSWorld) Destroy(ent donburi.Entity) {
	systems.Destroy(e.w, ent)
}
