package config

// ActionID represents a logical input action in the per-frame snapshot
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveForward
	ActionMoveBack
	ActionJump
	ActionBoost
	ActionSpinDash
	ActionStomp
	ActionCameraLeft
	ActionCameraRight
	ActionCount // Must be last - used for array sizing
)

// ActionNames maps the names used in input scripts to actions.
var ActionNames = map[string]ActionID{
	"left":         ActionMoveLeft,
	"right":        ActionMoveRight,
	"forward":      ActionMoveForward,
	"back":         ActionMoveBack,
	"jump":         ActionJump,
	"boost":        ActionBoost,
	"spin_dash":    ActionSpinDash,
	"stomp":        ActionStomp,
	"camera_left":  ActionCameraLeft,
	"camera_right": ActionCameraRight,
}
