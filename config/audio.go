package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundSpinCharge
	SoundSpinRelease
	SoundBoost
	SoundStomp
	SoundHoming
	// Pickup sounds
	SoundRing
	SoundSpring
	SoundCheckpoint
	// Combat sounds
	SoundEnemyKill
	SoundHurt
	SoundRingLoss
	SoundDeath
	SoundRespawn
	SoundGameOver
)

// SoundConfig maps sound IDs to event names and volumes
type SoundConfig struct {
	Events  map[SoundID]string
	Volumes map[SoundID]float64
}

var Sound SoundConfig

// EventName returns the collaborator-facing name for a sound.
func (id SoundID) EventName() string {
	return Sound.Events[id]
}

// Volume returns the playback volume for a sound, defaulting to full.
func (id SoundID) Volume() float64 {
	if v, ok := Sound.Volumes[id]; ok {
		return v
	}
	return 1.0
}

func init() {
	Sound = SoundConfig{
		Events: map[SoundID]string{
			SoundJump:        "jump",
			SoundSpinCharge:  "spin_charge",
			SoundSpinRelease: "spin_release",
			SoundBoost:       "boost",
			SoundStomp:       "stomp",
			SoundHoming:      "homing",
			SoundRing:        "ring",
			SoundSpring:      "spring",
			SoundCheckpoint:  "checkpoint",
			SoundEnemyKill:   "enemy_kill",
			SoundHurt:        "hurt",
			SoundRingLoss:    "ring_loss",
			SoundDeath:       "death",
			SoundRespawn:     "respawn",
			SoundGameOver:    "game_over",
		},
		Volumes: map[SoundID]float64{
			SoundRing:       0.3,
			SoundSpinCharge: 0.5,
			SoundBoost:      0.7,
			SoundSpring:     0.5,
			SoundCheckpoint: 0.4,
			SoundEnemyKill:  0.5,
			SoundHurt:       0.6,
			SoundRingLoss:   0.5,
			SoundDeath:      0.7,
			SoundGameOver:   0.8,
		},
	}
}
