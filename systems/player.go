package systems

import (
	"github.com/automoto/ringrush/components"
	"github.com/yohamta/donburi"
)

// SyncPlayer copies the controller's body onto the player entity's object so
// entity-level consumers see the current placement.
func SyncPlayer(w donburi.World) {
	components.Player.Each(w, func(e *donburi.Entry) {
		c := components.Player.Get(e).Controller
		if c == nil {
			return
		}
		obj := components.Object.Get(e)
		obj.Position = c.Body.Position
		obj.Half = c.Body.HalfExtents
	})
}
