package character

import (
	"github.com/automoto/ringrush/collision"
	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ProbeGround casts a short ray down from just above the body's center. The
// ray reaches a small margin past the feet, so a surface within that margin
// counts as ground.
func ProbeGround(q collision.Provider, body Body, cfg config.CharacterConfig, ignore ...donburi.Entity) collision.Hit {
	origin := body.Position.Add(gamemath.Up.Mul(cfg.ProbeLift))
	reach := body.HalfExtents.Y() + cfg.ProbeMargin
	return q.Raycast(origin, mgl64.Vec3{0, -1, 0}, reach, ignore...)
}
