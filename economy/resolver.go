package economy

import (
	"log"
	"math"
	"math/rand"

	"github.com/automoto/ringrush/audio"
	"github.com/automoto/ringrush/character"
	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/timers"
	"github.com/go-gl/mathgl/mgl64"
)

// Outcome is the result of a hazard contact.
type Outcome int

const (
	HazardIgnored Outcome = iota
	HazardDefeated
	HazardDamaged
)

// Resolver applies contact effects to the economy and the character. It is
// the only writer of Economy.
type Resolver struct {
	Economy    Economy
	Invincible Invincibility

	cfg   config.Config
	chr   *character.Controller
	audio audio.Player
	rng   *rand.Rand

	spawnPoint mgl64.Vec3
	respawn    timers.Countdown
	gameOver   bool
	hitTaken   bool

	requests []SpawnRequest
	delta    Delta
}

// NewResolver starts an economy with the configured lives. spawn is the
// respawn point until a checkpoint replaces it. A nil rng uses a fixed seed.
func NewResolver(cfg config.Config, chr *character.Controller, spawn mgl64.Vec3, player audio.Player, rng *rand.Rand) *Resolver {
	if player == nil {
		player = audio.Nop{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Resolver{
		Economy:    Economy{Lives: cfg.Economy.StartingLives},
		cfg:        cfg,
		chr:        chr,
		audio:      player,
		rng:        rng,
		spawnPoint: spawn,
	}
}

// GameOver reports whether the last life has been lost.
func (r *Resolver) GameOver() bool { return r.gameOver }

// RespawnPending reports whether a respawn is counting down.
func (r *Resolver) RespawnPending() bool { return r.respawn.Active() }

// CancelRespawn drops a pending respawn.
func (r *Resolver) CancelRespawn() { r.respawn.Stop() }

// SpawnPoint is where the character will respawn.
func (r *Resolver) SpawnPoint() mgl64.Vec3 { return r.spawnPoint }

// BeginTick resets the per-tick damage gate.
func (r *Resolver) BeginTick() {
	r.hitTaken = false
}

// Hazard resolves contact with a hazard worth points. at is the hazard
// position, used for the explosion effect when it is defeated.
func (r *Resolver) Hazard(points int, at mgl64.Vec3) Outcome {
	if r.gameOver {
		return HazardIgnored
	}

	if r.chr.IsAttacking() {
		r.change(Delta{Score: points})
		if r.chr.Body.Grounded {
			r.chr.ArmHoming()
		} else {
			r.chr.Bounce(r.cfg.Movement.JumpHeight * r.cfg.Economy.KillBounceFactor)
		}
		r.requests = append(r.requests, SpawnRequest{
			Kind:     SpawnExplosion,
			Position: at,
			TTL:      r.cfg.Economy.ExplosionTTL,
		})
		audio.PlaySound(r.audio, config.SoundEnemyKill)
		return HazardDefeated
	}

	if r.Invincible.Active() || r.hitTaken || r.respawn.Active() {
		return HazardIgnored
	}
	r.damage()
	return HazardDamaged
}

func (r *Resolver) damage() {
	ec := r.cfg.Economy
	r.hitTaken = true
	audio.PlaySound(r.audio, config.SoundHurt)
	r.Invincible.Grant(ec.HitInvincibility)

	if r.Economy.Rings > 0 {
		lost := min(r.Economy.Rings, ec.MaxRingLoss)
		r.change(Delta{Rings: -lost, Score: -lost * ec.RingLossPenalty})
		audio.PlaySound(r.audio, config.SoundRingLoss)
		r.requests = append(r.requests, scatterRings(r.rng, lost, r.chr.Body.Position, ec)...)
		return
	}

	r.change(Delta{Lives: -1})
	r.chr.Knockback(mgl64.Vec3{0, ec.DeathImpulse, 0})
	if r.Economy.Lives <= 0 {
		r.gameOver = true
		r.respawn.Stop()
		r.chr.Hide()
		audio.PlaySound(r.audio, config.SoundGameOver)
		log.Printf("Game over: final score %d", r.Economy.Score)
		return
	}
	audio.PlaySound(r.audio, config.SoundDeath)
	r.respawn.Start(ec.RespawnDelay)
}

// Ring collects one ring.
func (r *Resolver) Ring() {
	if r.gameOver {
		return
	}
	r.change(Delta{Rings: 1, Score: r.cfg.Economy.RingScore})
	audio.PlaySound(r.audio, config.SoundRing)
}

// Spring launches the character off a spring whose top face is at top. A
// spring touched from below while rising does nothing.
func (r *Resolver) Spring(power, top float64) bool {
	if r.gameOver {
		return false
	}
	body := r.chr.Body
	if body.Velocity.Y() > 0 && math.Abs(body.Position.Y()-top) >= r.cfg.Economy.SpringTopTolerance {
		return false
	}
	r.chr.LaunchFromSpring(power, top)
	audio.PlaySound(r.audio, config.SoundSpring)
	return true
}

// Checkpoint activates a checkpoint at pos and makes it the respawn point.
// It returns false when the checkpoint was already activated.
func (r *Resolver) Checkpoint(activated bool, pos mgl64.Vec3) bool {
	if activated || r.gameOver {
		return false
	}
	r.spawnPoint = pos.Add(mgl64.Vec3{0, r.cfg.Economy.CheckpointOffsetY, 0})
	audio.PlaySound(r.audio, config.SoundCheckpoint)
	return true
}

// Tick decays the invincibility window and the respawn countdown. It reports
// whether invincibility ended on this tick.
func (r *Resolver) Tick(dt float64) (invincibilityEnded bool) {
	invincibilityEnded = r.Invincible.Tick(dt)
	if r.respawn.Tick(dt) {
		r.doRespawn()
		invincibilityEnded = false
	}
	return invincibilityEnded
}

func (r *Resolver) doRespawn() {
	r.chr.Respawn(r.spawnPoint)
	r.Invincible.Grant(r.cfg.Economy.RespawnInvincibility)
	audio.PlaySound(r.audio, config.SoundRespawn)
	log.Printf("Respawned at (%.1f, %.1f, %.1f), %d lives left",
		r.spawnPoint.X(), r.spawnPoint.Y(), r.spawnPoint.Z(), r.Economy.Lives)
}

// Drain returns the spawn requests and economy change accumulated since the
// last call.
func (r *Resolver) Drain() ([]SpawnRequest, Delta) {
	reqs, d := r.requests, r.delta
	r.requests = nil
	r.delta = Delta{}
	return reqs, d
}

func (r *Resolver) change(d Delta) {
	r.delta = r.delta.Add(r.Economy.apply(d))
}
