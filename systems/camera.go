package systems

import (
	"github.com/automoto/ringrush/camera"
	"github.com/automoto/ringrush/character"
	"github.com/automoto/ringrush/components"
	"github.com/automoto/ringrush/config"
	"github.com/yohamta/donburi"
)

// UpdateCamera moves the world's camera rig after the character and returns
// it, or nil when the world has no camera.
func UpdateCamera(w donburi.World, dt float64, c *character.Controller) *camera.Rig {
	entry, ok := components.Camera.First(w)
	if !ok {
		return nil
	}
	rig := components.Camera.Get(entry)
	rig.Update(dt, c.Body.Position, c.Body.HorizontalSpeed(),
		c.Action(config.ActionCameraLeft).Pressed,
		c.Action(config.ActionCameraRight).Pressed)
	return rig
}
