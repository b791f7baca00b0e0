package config

// MovementConfig contains the character's locomotion tuning values.
// Speeds are in world units per second, accelerations in units per second squared.
type MovementConfig struct {
	BaseSpeed        float64 `yaml:"base_speed"`
	TopSpeed         float64 `yaml:"top_speed"`
	Acceleration     float64 `yaml:"acceleration"`
	AirAcceleration  float64 `yaml:"air_acceleration"`
	Deceleration     float64 `yaml:"deceleration"`
	Friction         float64 `yaml:"friction"`
	RollingFriction  float64 `yaml:"rolling_friction"` // Decay while rolling with no input
	Gravity          float64 `yaml:"gravity"`
	AirControlFactor float64 `yaml:"air_control_factor"`
	JumpHeight       float64 `yaml:"jump_height"` // Initial vertical speed of a jump
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
	TurnRate         float64 `yaml:"turn_rate"` // Facing lerp factor per second

	// Locomotion thresholds as fractions of BaseSpeed
	RunThreshold      float64 `yaml:"run_threshold"`
	RollExitThreshold float64 `yaml:"roll_exit_threshold"`
}

// AbilityConfig contains spin dash, boost and stomp constants.
type AbilityConfig struct {
	// Spin dash
	MaxSpinCharge   float64 `yaml:"max_spin_charge"`
	SpinChargeRate  float64 `yaml:"spin_charge_rate"` // Charge per second while held
	SpinMinSpeed    float64 `yaml:"spin_min_speed"`
	SpinSpeedFactor float64 `yaml:"spin_speed_factor"`
	SpinMinCharge   float64 `yaml:"spin_min_charge"` // Release below this does nothing

	// Boost
	MaxBoost           float64 `yaml:"max_boost"`
	BoostMultiplier    float64 `yaml:"boost_multiplier"`
	BoostCost          float64 `yaml:"boost_cost"`     // Energy per second while boosting
	BoostRecharge      float64 `yaml:"boost_recharge"` // Energy per second while grounded and idle
	BoostMinActivation float64 `yaml:"boost_min_activation"`

	// Stomp
	StompSpeed float64 `yaml:"stomp_speed"`
}

// HomingConfig contains homing attack targeting values.
type HomingConfig struct {
	Speed      float64 `yaml:"speed"`
	Range      float64 `yaml:"range"`
	AngleLimit float64 `yaml:"angle_limit"` // Half-angle of the forward cone, degrees
	MinDist    float64 `yaml:"min_dist"`    // Candidates nearer than this are ignored
}

// EconomyConfig contains ring, score, damage and respawn values.
type EconomyConfig struct {
	StartingLives int `yaml:"starting_lives"`

	RingScore       int `yaml:"ring_score"`
	MaxRingLoss     int `yaml:"max_ring_loss"`
	RingLossPenalty int `yaml:"ring_loss_penalty"` // Score lost per dropped ring

	HitInvincibility     float64 `yaml:"hit_invincibility"`     // Seconds
	RespawnInvincibility float64 `yaml:"respawn_invincibility"` // Seconds
	RespawnDelay         float64 `yaml:"respawn_delay"`         // Seconds
	DeathImpulse         float64 `yaml:"death_impulse"`         // Upward speed when hit with no rings

	KillBounceFactor float64 `yaml:"kill_bounce_factor"` // Fraction of JumpHeight

	// Dropped ring scatter
	DropOffsetY     float64 `yaml:"drop_offset_y"`
	DropMinSpeed    float64 `yaml:"drop_min_speed"`
	DropMaxSpeed    float64 `yaml:"drop_max_speed"`
	DropMinUpSpeed  float64 `yaml:"drop_min_up_speed"`
	DropMaxUpSpeed  float64 `yaml:"drop_max_up_speed"`
	DropFadeTime    float64 `yaml:"drop_fade_time"`
	DropTTL         float64 `yaml:"drop_ttl"`
	DropGravityMult float64 `yaml:"drop_gravity_mult"`

	SpringTopTolerance float64 `yaml:"spring_top_tolerance"`
	CheckpointOffsetY  float64 `yaml:"checkpoint_offset_y"`

	ExplosionTTL float64 `yaml:"explosion_ttl"`
}

// FrameConfig contains per-tick timing values.
type FrameConfig struct {
	MaxDelta     float64 `yaml:"max_delta"`
	TimeScale    float64 `yaml:"time_scale"`
	MinTimeScale float64 `yaml:"min_time_scale"`
	MaxTimeScale float64 `yaml:"max_time_scale"`
	TickRate     int     `yaml:"tick_rate"` // Ticks per second for the fixed-rate loop
}

// CameraConfig contains camera rig follow and zoom values.
type CameraConfig struct {
	RotateSpeed     float64 `yaml:"rotate_speed"` // Degrees per second
	FollowSmoothing float64 `yaml:"follow_smoothing"`
	ZoomSmoothing   float64 `yaml:"zoom_smoothing"`
	BaseDistance    float64 `yaml:"base_distance"`
	SpeedZoom       float64 `yaml:"speed_zoom"` // Extra distance per unit of speed
	MinDistance     float64 `yaml:"min_distance"`
	MaxDistance     float64 `yaml:"max_distance"`
	Height          float64 `yaml:"height"`      // Eye height above the follow point
	LookOffset      float64 `yaml:"look_offset"` // Follow point height above the character
}

// CharacterConfig contains the character's collision dimensions.
type CharacterConfig struct {
	HalfWidth     float64 `yaml:"half_width"`
	HalfHeight    float64 `yaml:"half_height"`
	ProbeLift     float64 `yaml:"probe_lift"`   // Ground ray starts this far above the center
	ProbeMargin   float64 `yaml:"probe_margin"` // Extra reach below the feet
	BlinkPeriod   float64 `yaml:"blink_period"` // Seconds per invincibility blink cycle
	BlinkMinAlpha float64 `yaml:"blink_min_alpha"`
}

// Config bundles every tuning section. It is built once and passed by value
// into constructors; nothing mutates it at runtime.
type Config struct {
	Movement  MovementConfig  `yaml:"movement"`
	Abilities AbilityConfig   `yaml:"abilities"`
	Homing    HomingConfig    `yaml:"homing"`
	Economy   EconomyConfig   `yaml:"economy"`
	Frame     FrameConfig     `yaml:"frame"`
	Camera    CameraConfig    `yaml:"camera"`
	Character CharacterConfig `yaml:"character"`
}

// Global default configuration instances
var Movement MovementConfig
var Abilities AbilityConfig
var Homing HomingConfig
var Economy EconomyConfig
var Frame FrameConfig
var Camera CameraConfig
var Character CharacterConfig

// Default returns a copy of the package defaults.
func Default() Config {
	return Config{
		Movement:  Movement,
		Abilities: Abilities,
		Homing:    Homing,
		Economy:   Economy,
		Frame:     Frame,
		Camera:    Camera,
		Character: Character,
	}
}

func init() {
	// Movement Config
	Movement = MovementConfig{
		BaseSpeed:        10.0,
		TopSpeed:         25.0,
		Acceleration:     15.0,
		AirAcceleration:  5.0,
		Deceleration:     10.0,
		Friction:         5.0,
		RollingFriction:  2.5,
		Gravity:          35.0,
		AirControlFactor: 0.6,
		JumpHeight:       12.0,
		MaxFallSpeed:     -30.0,
		TurnRate:         10.0,

		RunThreshold:      0.8,
		RollExitThreshold: 0.5,
	}

	// Ability Config
	Abilities = AbilityConfig{
		MaxSpinCharge:   120.0,
		SpinChargeRate:  90.0,
		SpinMinSpeed:    15.0,
		SpinSpeedFactor: 0.3,
		SpinMinCharge:   10.0,

		MaxBoost:           100.0,
		BoostMultiplier:    1.8,
		BoostCost:          30.0,
		BoostRecharge:      10.0,
		BoostMinActivation: 10.0,

		StompSpeed: -25.0,
	}

	// Homing Config
	Homing = HomingConfig{
		Speed:      35.0,
		Range:      20.0,
		AngleLimit: 70.0,
		MinDist:    0.1,
	}

	// Economy Config
	Economy = EconomyConfig{
		StartingLives: 3,

		RingScore:       10,
		MaxRingLoss:     20,
		RingLossPenalty: 5,

		HitInvincibility:     1.5,
		RespawnInvincibility: 2.0,
		RespawnDelay:         1.5,
		DeathImpulse:         5.0,

		KillBounceFactor: 0.6,

		DropOffsetY:     0.5,
		DropMinSpeed:    2.0,
		DropMaxSpeed:    5.0,
		DropMinUpSpeed:  4.0,
		DropMaxUpSpeed:  8.0,
		DropFadeTime:    3.0,
		DropTTL:         3.1,
		DropGravityMult: 2.0,

		SpringTopTolerance: 0.5,
		CheckpointOffsetY:  1.0,

		ExplosionTTL: 0.5,
	}

	// Frame Config
	Frame = FrameConfig{
		MaxDelta:     0.1,
		TimeScale:    1.0,
		MinTimeScale: 0.1,
		MaxTimeScale: 5.0,
		TickRate:     60,
	}

	// Camera Config
	Camera = CameraConfig{
		RotateSpeed:     100.0,
		FollowSmoothing: 4.0,
		ZoomSmoothing:   2.0,
		BaseDistance:    15.0,
		SpeedZoom:       0.3,
		MinDistance:     15.0,
		MaxDistance:     35.0,
		Height:          5.0,
		LookOffset:      2.0,
	}

	// Character Config
	Character = CharacterConfig{
		HalfWidth:     0.5,
		HalfHeight:    1.0,
		ProbeLift:     0.1,
		ProbeMargin:   0.2,
		BlinkPeriod:   0.2,
		BlinkMinAlpha: 0.2,
	}
}
