package character

import (
	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Input is one frame's snapshot: held flags per action plus the camera basis
// used for camera-relative movement.
type Input struct {
	Held          [config.ActionCount]bool
	CameraForward mgl64.Vec3
	CameraRight   mgl64.Vec3
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// Press returns a copy of the input with the given actions held.
func (in Input) Press(ids ...config.ActionID) Input {
	for _, id := range ids {
		in.Held[id] = true
	}
	return in
}

// MoveAxes returns the raw stick values: x is right minus left, z is forward
// minus back.
func (in Input) MoveAxes() (x, z float64) {
	if in.Held[config.ActionMoveRight] {
		x++
	}
	if in.Held[config.ActionMoveLeft] {
		x--
	}
	if in.Held[config.ActionMoveForward] {
		z++
	}
	if in.Held[config.ActionMoveBack] {
		z--
	}
	return x, z
}

// MoveDirection converts the held movement flags into a horizontal
// world-space direction relative to the camera basis. A missing basis falls
// back to the world axes. It reports false when there is no usable input.
func (in Input) MoveDirection() (mgl64.Vec3, bool) {
	x, z := in.MoveAxes()
	if x == 0 && z == 0 {
		return mgl64.Vec3{}, false
	}
	forward, ok := gamemath.FlatDirection(in.CameraForward)
	if !ok {
		forward = mgl64.Vec3{0, 0, 1}
	}
	right, ok := gamemath.FlatDirection(in.CameraRight)
	if !ok {
		right = mgl64.Vec3{1, 0, 0}
	}
	return gamemath.SafeNormalize(forward.Mul(z).Add(right.Mul(x)))
}

// actionState compares two frames of held flags.
func actionState(curr, prev [config.ActionCount]bool, id config.ActionID) ActionState {
	c := curr[id]
	p := prev[id]
	return ActionState{
		Pressed:      c,
		JustPressed:  c && !p,
		JustReleased: !c && p,
	}
}
