package character

import (
	"github.com/automoto/ringrush/collision"
	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/homing"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

const dt = 1.0 / 60

// flatFloor is an infinite horizontal plane at height top.
type flatFloor struct {
	top     float64
	present bool
}

func (f *flatFloor) Raycast(origin, dir mgl64.Vec3, maxDist float64, _ ...donburi.Entity) collision.Hit {
	if !f.present || dir.Y() >= 0 {
		return collision.Hit{}
	}
	d := (origin.Y() - f.top) / -dir.Y()
	if d < 0 || d > maxDist {
		return collision.Hit{}
	}
	return collision.Hit{
		Hit:      true,
		Point:    origin.Add(dir.Mul(d)),
		Normal:   mgl64.Vec3{0, 1, 0},
		Distance: d,
	}
}

func (f *flatFloor) Intersects(a, b collision.Bounds) bool {
	return a.Intersects(b)
}

func newGroundedController() (*Controller, *flatFloor) {
	floor := &flatFloor{top: 0, present: true}
	c := NewController(config.Default(), mgl64.Vec3{0, config.Character.HalfHeight, 0}, nil)
	return c, floor
}

func tick(c *Controller, q collision.Provider, in Input, cands ...homing.Candidate) {
	c.CheckGround(q)
	c.SampleInput(in)
	c.UpdateAbilities(dt, cands, q)
	c.Move(dt)
}

func held(ids ...config.ActionID) Input {
	return Input{}.Press(ids...)
}
