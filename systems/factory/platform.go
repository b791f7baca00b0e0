package factory

import (
	"github.com/automoto/ringrush/archetypes"
	"github.com/automoto/ringrush/components"
	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/automoto/ringrush/tags"
	"github.com/yohamta/donburi"
)

func CreatePlatform(w donburi.World, box leveldata.Box) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)
	components.Object.SetValue(platform, components.ObjectData{Position: box.Center, Half: box.Half})
	addToSpace(w, platform, tags.ResolvSolid)
	return platform
}
