package factory

import (
	"github.com/automoto/ringrush/archetypes"
	"github.com/automoto/ringrush/character"
	"github.com/automoto/ringrush/components"
	"github.com/yohamta/donburi"
)

// CreatePlayer creates the entity that mirrors the character for systems
// that work on entities, such as blinking. The controller stays the owner of
// the body.
func CreatePlayer(w donburi.World, c *character.Controller) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	components.Player.SetValue(player, components.PlayerData{Controller: c})
	components.Object.SetValue(player, components.ObjectData{
		Position: c.Body.Position,
		Half:     c.Body.HalfExtents,
	})

	// Blink is permanently attached to avoid archetype thrashing
	components.Blink.SetValue(player, components.BlinkData{Alpha: 1})
	return player
}
