package config

// AbilityState identifies the character's single active action state.
type AbilityState int

const (
	StateIdle AbilityState = iota
	StateWalking
	StateRunning
	StateJumping
	StateRolling
	StateBoosting
	StateSpinCharging
	StateStomping
	StateHoming
	abilityStateCount
)

var abilityStateNames = [abilityStateCount]string{
	StateIdle:         "idle",
	StateWalking:      "walking",
	StateRunning:      "running",
	StateJumping:      "jumping",
	StateRolling:      "rolling",
	StateBoosting:     "boosting",
	StateSpinCharging: "spin_charging",
	StateStomping:     "stomping",
	StateHoming:       "homing",
}

func (s AbilityState) String() string {
	if s < 0 || s >= abilityStateCount {
		return "unknown"
	}
	return abilityStateNames[s]
}

// IsAttacking reports whether contact in this state defeats a hazard.
func (s AbilityState) IsAttacking() bool {
	return s == StateRolling || s == StateStomping || s == StateHoming
}

// IsAirborneAttack reports whether the state is an airborne lock-in that a
// landing cancels.
func (s AbilityState) IsAirborneAttack() bool {
	return s == StateStomping || s == StateHoming
}
