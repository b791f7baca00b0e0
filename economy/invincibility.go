package economy

import "github.com/automoto/ringrush/timers"

// Invincibility is a timed window during which hazard contact does no damage.
type Invincibility struct {
	timer timers.Countdown
}

// Grant starts a new window of d seconds, replacing any running one.
func (i *Invincibility) Grant(d float64) {
	i.timer.Start(d)
}

// Active reports whether the window is open.
func (i Invincibility) Active() bool {
	return i.timer.Active()
}

// Remaining is the time left in seconds.
func (i Invincibility) Remaining() float64 {
	return i.timer.Remaining()
}

// Tick decays the window and reports whether it closed on this tick.
func (i *Invincibility) Tick(dt float64) bool {
	return i.timer.Tick(dt)
}
