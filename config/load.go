package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file and overlays it on the package defaults. Keys that
// are absent from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays YAML data on the package defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects tuning values the controller cannot run with.
func (c Config) Validate() error {
	m := c.Movement
	if m.MaxFallSpeed >= 0 {
		return fmt.Errorf("movement.max_fall_speed must be negative, got %v", m.MaxFallSpeed)
	}
	if m.Gravity <= 0 {
		return fmt.Errorf("movement.gravity must be positive, got %v", m.Gravity)
	}
	if m.TopSpeed <= 0 || m.BaseSpeed <= 0 {
		return fmt.Errorf("movement speeds must be positive (base %v, top %v)", m.BaseSpeed, m.TopSpeed)
	}
	if m.AirControlFactor < 0 {
		return fmt.Errorf("movement.air_control_factor must not be negative, got %v", m.AirControlFactor)
	}

	a := c.Abilities
	if a.MaxSpinCharge <= 0 {
		return fmt.Errorf("abilities.max_spin_charge must be positive, got %v", a.MaxSpinCharge)
	}
	if a.MaxBoost <= 0 {
		return fmt.Errorf("abilities.max_boost must be positive, got %v", a.MaxBoost)
	}
	if a.BoostMultiplier < 1 {
		return fmt.Errorf("abilities.boost_multiplier must be at least 1, got %v", a.BoostMultiplier)
	}

	if c.Homing.AngleLimit <= 0 || c.Homing.AngleLimit > 180 {
		return fmt.Errorf("homing.angle_limit must be in (0, 180], got %v", c.Homing.AngleLimit)
	}
	if c.Homing.Range <= 0 {
		return fmt.Errorf("homing.range must be positive, got %v", c.Homing.Range)
	}

	e := c.Economy
	if e.StartingLives < 1 {
		return fmt.Errorf("economy.starting_lives must be at least 1, got %d", e.StartingLives)
	}
	if e.MaxRingLoss < 0 || e.RingLossPenalty < 0 || e.RingScore < 0 {
		return fmt.Errorf("economy ring values must not be negative")
	}
	if e.DropMinSpeed > e.DropMaxSpeed || e.DropMinUpSpeed > e.DropMaxUpSpeed {
		return fmt.Errorf("economy drop speed ranges are inverted")
	}

	f := c.Frame
	if f.MaxDelta <= 0 {
		return fmt.Errorf("frame.max_delta must be positive, got %v", f.MaxDelta)
	}
	if f.MinTimeScale <= 0 || f.MinTimeScale > f.MaxTimeScale {
		return fmt.Errorf("frame time scale bounds invalid (%v, %v)", f.MinTimeScale, f.MaxTimeScale)
	}
	if f.TickRate <= 0 {
		return fmt.Errorf("frame.tick_rate must be positive, got %d", f.TickRate)
	}

	if c.Character.HalfHeight <= 0 || c.Character.HalfWidth <= 0 {
		return fmt.Errorf("character extents must be positive")
	}
	return nil
}
