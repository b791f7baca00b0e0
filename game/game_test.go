package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/automoto/ringrush/audio"
	"github.com/automoto/ringrush/character"
	"github.com/automoto/ringrush/components"
	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/economy"
	"github.com/automoto/ringrush/shared/inputscript"
	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

// beside overlaps the character at spawn without sitting under it.
var beside = mgl64.Vec3{5.8, 1, 10}

func flatLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:        "flat",
		Max:         mgl64.Vec3{60, 0, 20},
		PlayerSpawn: mgl64.Vec3{5, 1, 10},
		Platforms: []leveldata.Box{
			{Center: mgl64.Vec3{30, -0.5, 10}, Half: mgl64.Vec3{30, 0.5, 10}},
		},
	}
}

func newCoordinator(t *testing.T, cfg config.Config, level *leveldata.Level) (*Coordinator, *audio.Recorder) {
	t.Helper()
	out := &audio.Recorder{}
	c := NewCoordinator(cfg, level, out, rand.New(rand.NewSource(1)))
	require.NotNil(t, c.Camera())
	return c, out
}

func names(events []audio.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Name
	}
	return out
}

func TestCharacterSettlesOnGround(t *testing.T) {
	level := flatLevel()
	level.PlayerSpawn = mgl64.Vec3{5, 3, 10}
	c, _ := newCoordinator(t, config.Default(), level)

	var res FrameResult
	for i := 0; i < 120; i++ {
		res = c.Update(dt, character.Input{})
	}
	assert.True(t, res.Body.Grounded)
	assert.InDelta(t, 1.0, res.Body.Position.Y(), 1e-9)
	assert.Equal(t, config.StateIdle, res.State)
	assert.Equal(t, 120, res.Tick)
}

func TestRingPickupIsReported(t *testing.T) {
	level := flatLevel()
	level.Rings = []mgl64.Vec3{beside}
	c, out := newCoordinator(t, config.Default(), level)

	res := c.Update(dt, character.Input{})
	assert.Equal(t, economy.Delta{Rings: 1, Score: 10}, res.EconomyDelta)
	assert.Equal(t, 1, res.Economy.Rings)
	assert.Contains(t, names(res.AudioEvents), "ring")
	assert.Equal(t, res.AudioEvents, out.Drain(), "audio is forwarded to the player")

	res = c.Update(dt, character.Input{})
	assert.True(t, res.EconomyDelta.IsZero())
}

func TestHitSpawnsDroppedRings(t *testing.T) {
	level := flatLevel()
	level.Enemies = []leveldata.EnemySpawn{{Position: beside, Size: 1, Points: 10}}
	c, _ := newCoordinator(t, config.Default(), level)
	c.Resolver().Economy.Rings = 5
	c.Resolver().Economy.Score = 100

	res := c.Update(dt, character.Input{})
	require.Len(t, res.SpawnRequests, 5)
	require.Len(t, res.Spawned, 5)
	for _, e := range res.Spawned {
		entry := c.World().Entry(e)
		require.True(t, entry.Valid())
		assert.True(t, entry.HasComponent(components.DroppedRing))
	}
	assert.Equal(t, economy.Delta{Rings: -5, Score: -25}, res.EconomyDelta)
	assert.Contains(t, names(res.AudioEvents), "hurt")

	// Still touching the hazard, but invincible.
	res = c.Update(dt, character.Input{})
	assert.Empty(t, res.SpawnRequests)
	assert.Equal(t, 3, res.Economy.Lives)
}

func TestGameOverSuspendsUpdates(t *testing.T) {
	cfg := config.Default()
	cfg.Economy.StartingLives = 1
	level := flatLevel()
	level.Enemies = []leveldata.EnemySpawn{{Position: beside, Size: 1, Points: 10}}
	c, _ := newCoordinator(t, cfg, level)

	res := c.Update(dt, character.Input{})
	require.True(t, res.GameOver)
	assert.False(t, res.Body.Visible)
	assert.Equal(t, 0, res.Economy.Lives)
	assert.Contains(t, names(res.AudioEvents), "game_over")

	frozen := c.Update(dt, character.Input{}.Press(config.ActionMoveForward, config.ActionJump))
	assert.True(t, frozen.GameOver)
	assert.Equal(t, res.Body, frozen.Body)
	assert.Equal(t, res.Tick, frozen.Tick)
	assert.Empty(t, frozen.AudioEvents)
	assert.False(t, c.Resolver().RespawnPending())
}

func TestCameraBasisSteersMovement(t *testing.T) {
	c, _ := newCoordinator(t, config.Default(), flatLevel())
	forward := character.Input{}.Press(config.ActionMoveForward)

	for i := 0; i < 30; i++ {
		c.Update(dt, forward)
	}
	v := c.Character().Body.Velocity
	assert.Greater(t, v.Z(), 0.0)
	assert.InDelta(t, 0, v.X(), 1e-9)

	c.Camera().Yaw = 90
	for i := 0; i < 60; i++ {
		c.Update(dt, forward)
	}
	v = c.Character().Body.Velocity
	assert.Greater(t, v.X(), v.Z())
}

func TestClampDelta(t *testing.T) {
	f := config.Frame
	tests := []struct {
		name  string
		dt    float64
		scale float64
		want  float64
	}{
		{"normal frame", dt, 1, dt},
		{"long frame is capped", 0.5, 1, f.MaxDelta},
		{"fast forward", dt, 3, 3 * dt},
		{"scale above the bound", 0.01, 10, 0.01 * f.MaxTimeScale},
		{"scale below the bound", dt, 0, dt * f.MinTimeScale},
		{"negative dt", -1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := f
			cfg.TimeScale = tt.scale
			assert.InDelta(t, tt.want, ClampDelta(tt.dt, cfg), 1e-12)
		})
	}
}

func TestECSWorld(t *testing.T) {
	c, _ := newCoordinator(t, config.Default(), flatLevel())
	w := NewECSWorld(c.World())

	e := w.Spawn(economy.SpawnRequest{Kind: economy.SpawnExplosion, TTL: 1})
	assert.True(t, c.World().Valid(e))
	w.Destroy(e)
	assert.False(t, c.World().Valid(e))
	w.Destroy(e)

	before := c.World().Len()
	w.Spawn(economy.SpawnRequest{Kind: economy.SpawnKind(99)})
	assert.Equal(t, before, c.World().Len())
}

func TestRunFastPlaysScript(t *testing.T) {
	script, err := inputscript.Parse([]byte("steps:\n  - {from: 0, to: 20, actions: [forward]}\n"))
	require.NoError(t, err)

	c, _ := newCoordinator(t, config.Default(), flatLevel())
	loop := NewGameLoop(c, ScriptInput(script, 0), 60)

	frames := 0
	loop.OnFrame(func(FrameResult) { frames++ })
	last := loop.RunFast()

	assert.Equal(t, 20, frames)
	assert.Equal(t, 20, last.Tick)
	assert.Greater(t, last.Body.Position.Z(), 10.0)
}

func TestScriptInputLimit(t *testing.T) {
	script, err := inputscript.Parse([]byte("steps:\n  - {from: 0, to: 5, actions: [jump]}\n"))
	require.NoError(t, err)

	src := ScriptInput(script, 8)
	in, ok := src.Input(7)
	assert.True(t, ok)
	assert.False(t, in.Held[config.ActionJump])
	_, ok = src.Input(8)
	assert.False(t, ok)
}

func TestRunStopsAtGameOver(t *testing.T) {
	cfg := config.Default()
	cfg.Economy.StartingLives = 1
	level := flatLevel()
	level.Enemies = []leveldata.EnemySpawn{{Position: beside, Size: 1, Points: 10}}
	c, _ := newCoordinator(t, cfg, level)

	endless := InputFunc(func(int) (character.Input, bool) { return character.Input{}, true })
	loop := NewGameLoop(c, endless, 1000)
	last := loop.Run(context.Background())
	assert.True(t, last.GameOver)
	assert.Equal(t, 1, last.Tick)
}

func TestRunStops(t *testing.T) {
	c, _ := newCoordinator(t, config.Default(), flatLevel())
	endless := InputFunc(func(int) (character.Input, bool) { return character.Input{}, true })

	loop := NewGameLoop(c, endless, 1000)
	loop.OnFrame(func(r FrameResult) {
		if r.Tick == 3 {
			loop.Stop()
		}
	})
	loop.Stop()
	loop.Stop()
	loop.Run(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	NewGameLoop(c, endless, 1000).Run(ctx)
}
