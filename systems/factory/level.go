package factory

import (
	"github.com/automoto/ringrush/archetypes"
	"github.com/automoto/ringrush/components"
	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/yohamta/donburi"
)

// spaceCellSize is the resolv cell size in world units.
const spaceCellSize = 4

// CreateLevel builds the collision space and every static entity of a
// level.
func CreateLevel(w donburi.World, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: level})

	CreateSpace(w, level.Min, level.Max, spaceCellSize)

	for _, p := range level.Platforms {
		CreatePlatform(w, p)
	}
	for _, r := range level.Rings {
		CreateRing(w, r)
	}
	for _, e := range level.Enemies {
		CreateHazard(w, e)
	}
	for _, s := range level.Springs {
		CreateSpring(w, s)
	}
	for _, c := range level.Checkpoints {
		CreateCheckpoint(w, c)
	}
	return entry
}
