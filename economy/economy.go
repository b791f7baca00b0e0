// Package economy turns world contacts (rings, hazards, springs and
// checkpoints) into ring, score and life changes, invincibility windows and
// respawn sequencing.
package economy

// Economy is the ring, score and lives bookkeeping. Every field stays at or
// above zero.
type Economy struct {
	Rings int
	Score int
	Lives int
}

// Delta is the change applied to an Economy over one tick.
type Delta struct {
	Rings int
	Score int
	Lives int
}

// IsZero reports whether nothing changed.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// Add accumulates another delta.
func (d Delta) Add(o Delta) Delta {
	return Delta{Rings: d.Rings + o.Rings, Score: d.Score + o.Score, Lives: d.Lives + o.Lives}
}

// apply adds d to the economy, flooring every field at zero, and returns the
// change that was actually applied.
func (e *Economy) apply(d Delta) Delta {
	before := *e
	e.Rings = max(0, e.Rings+d.Rings)
	e.Score = max(0, e.Score+d.Score)
	e.Lives = max(0, e.Lives+d.Lives)
	return Delta{
		Rings: e.Rings - before.Rings,
		Score: e.Score - before.Score,
		Lives: e.Lives - before.Lives,
	}
}
