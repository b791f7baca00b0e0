// Package timers holds the per-tick countdowns used for delayed effects such
// as invincibility windows and respawns. Countdowns are plain values decayed
// once per tick by their owner, so a tick stays deterministic and replayable.
package timers

// Countdown is a seconds-based timer.
type Countdown struct {
	remaining float64
	active    bool
}

// Start (re)arms the countdown for d seconds. A non-positive duration leaves
// it inactive.
func (c *Countdown) Start(d float64) {
	c.remaining = d
	c.active = d > 0
}

// Stop cancels the countdown without firing it.
func (c *Countdown) Stop() {
	c.remaining = 0
	c.active = false
}

// Active reports whether the countdown is still running.
func (c Countdown) Active() bool {
	return c.active
}

// Remaining is the time left in seconds, zero once expired.
func (c Countdown) Remaining() float64 {
	if !c.active {
		return 0
	}
	return c.remaining
}

// Tick decays the countdown by dt and returns true only on the tick it
// expires.
func (c *Countdown) Tick(dt float64) bool {
	if !c.active {
		return false
	}
	c.remaining -= dt
	if c.remaining <= 0 {
		c.remaining = 0
		c.active = false
		return true
	}
	return false
}
