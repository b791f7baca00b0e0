// Package game runs the character in its level: the per-tick frame
// coordinator, the spawn collaborator and the fixed-rate loop.
package game

import (
	"math/rand"

	"github.com/automoto/ringrush/audio"
	"github.com/automoto/ringrush/camera"
	"github.com/automoto/ringrush/character"
	"github.com/automoto/ringrush/collision"
	"github.com/automoto/ringrush/components"
	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/economy"
	"github.com/automoto/ringrush/homing"
	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/automoto/ringrush/systems"
	"github.com/automoto/ringrush/systems/factory"
	"github.com/yohamta/donburi"
)

// FrameResult is what one tick produced.
type FrameResult struct {
	Tick          int
	Body          character.Body
	State         config.AbilityState
	SpawnRequests []economy.SpawnRequest
	Spawned       []donburi.Entity
	AudioEvents   []audio.Event
	EconomyDelta  economy.Delta
	Economy       economy.Economy
	GameOver      bool
}

// Coordinator sequences one tick of the character in a fixed order: ground
// check, input, abilities, movement, world interactions, then timer decay.
type Coordinator struct {
	cfg   config.Config
	world donburi.World
	spawn World
	space *collision.Space

	chr *character.Controller
	res *economy.Resolver

	rec   *audio.Recorder
	out   audio.Player
	cands []homing.Candidate
	tick  int
}

// NewCoordinator builds the world for level and places the character at its
// spawn. Audio produced during a tick is reported in the FrameResult and
// forwarded to player; a nil player only records. A nil rng is seeded
// deterministically.
func NewCoordinator(cfg config.Config, level *leveldata.Level, player audio.Player, rng *rand.Rand) *Coordinator {
	w := donburi.NewWorld()
	factory.CreateLevel(w, level)

	rec := &audio.Recorder{}
	chr := character.NewController(cfg, level.PlayerSpawn, rec)
	factory.CreatePlayer(w, chr)
	factory.CreateCamera(w, cfg.Camera, level.PlayerSpawn)

	if player == nil {
		player = audio.Nop{}
	}

	return &Coordinator{
		cfg:   cfg,
		world: w,
		spawn: NewECSWorld(w),
		space: systems.Space(w),
		chr:   chr,
		res:   economy.NewResolver(cfg, chr, level.PlayerSpawn, rec, rng),
		rec:   rec,
		out:   player,
	}
}

// Character is the controlled character.
func (c *Coordinator) Character() *character.Controller { return c.chr }

// Resolver is the damage and economy resolver.
func (c *Coordinator) Resolver() *economy.Resolver { return c.res }

// World is the ECS world holding the level's entities.
func (c *Coordinator) World() donburi.World { return c.world }

// Camera is the rig whose basis steers the next tick's input.
func (c *Coordinator) Camera() *camera.Rig {
	entry, ok := components.Camera.First(c.world)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}

// Economy is the current ring, score and lives tally.
func (c *Coordinator) Economy() economy.Economy { return c.res.Economy }

// ClampDelta applies the time scale and caps the result. The time scale is
// clamped to its configured bounds first.
func ClampDelta(dt float64, f config.FrameConfig) float64 {
	if dt <= 0 {
		return 0
	}
	scale := min(max(f.TimeScale, f.MinTimeScale), f.MaxTimeScale)
	return min(dt*scale, f.MaxDelta)
}

// Update advances one tick. After Game-Over nothing is simulated and only the
// terminal result is returned.
func (c *Coordinator) Update(dt float64, in character.Input) FrameResult {
	if c.res.GameOver() {
		return c.result(nil, nil, economy.Delta{}, nil)
	}
	dt = ClampDelta(dt, c.cfg.Frame)

	// Movement is relative to the camera as it was after the previous tick.
	if rig := c.Camera(); rig != nil && in.CameraForward.Len() == 0 && in.CameraRight.Len() == 0 {
		in.CameraForward = rig.Forward()
		in.CameraRight = rig.Right()
	}

	c.res.BeginTick()
	c.chr.CheckGround(c.space)
	c.chr.SampleInput(in)
	c.cands = systems.HomingCandidates(c.world, c.cands)
	c.chr.UpdateAbilities(dt, c.cands, c.space)
	c.chr.Move(dt)
	systems.ResolveInteractions(c.world, c.chr, c.res)

	if !c.res.GameOver() {
		c.res.Tick(dt)
		systems.UpdateBlink(c.world, dt, c.res.Invincible.Active(), c.cfg.Character)
		systems.UpdateDroppedRings(c.world, dt, c.cfg.Movement.Gravity*c.cfg.Economy.DropGravityMult)
		systems.UpdateAutoDestroy(c.world, dt)
		systems.UpdateCamera(c.world, dt, c.chr)
	}
	systems.SyncPlayer(c.world)

	reqs, delta := c.res.Drain()
	spawned := make([]donburi.Entity, 0, len(reqs))
	for _, req := range reqs {
		spawned = append(spawned, c.spawn.Spawn(req))
	}

	events := c.rec.Drain()
	for _, e := range events {
		c.out.Play(e.Name, e.Volume)
	}

	c.tick++
	return c.result(reqs, spawned, delta, events)
}

func (c *Coordinator) result(reqs []economy.SpawnRequest, spawned []donburi.Entity, delta economy.Delta, events []audio.Event) FrameResult {
	return FrameResult{
		Tick:          c.tick,
		Body:          c.chr.Body,
		State:         c.chr.State(),
		SpawnRequests: reqs,
		Spawned:       spawned,
		AudioEvents:   events,
		EconomyDelta:  delta,
		Economy:       c.res.Economy,
		GameOver:      c.res.GameOver(),
	}
}
