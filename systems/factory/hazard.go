package factory

import (
	"github.com/automoto/ringrush/archetypes"
	"github.com/automoto/ringrush/components"
	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/automoto/ringrush/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func CreateHazard(w donburi.World, e leveldata.EnemySpawn) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(w)
	half := e.Size / 2
	components.Object.SetValue(hazard, components.ObjectData{
		Position: e.Position,
		Half:     mgl64.Vec3{half, half, half},
	})
	components.Hazard.SetValue(hazard, components.HazardData{Size: e.Size, Points: e.Points})
	addToSpace(w, hazard, tags.ResolvHazard)
	return hazard
}
