package factory

import (
	"github.com/automoto/ringrush/archetypes"
	"github.com/automoto/ringrush/camera"
	"github.com/automoto/ringrush/components"
	"github.com/automoto/ringrush/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World, cfg config.CameraConfig, target mgl64.Vec3) *donburi.Entry {
	cam := archetypes.Camera.Spawn(w)
	components.Camera.Set(cam, camera.NewRig(cfg, target))
	return cam
}
