// Package audio is the boundary to sound output. Playback is fire-and-forget:
// nothing here blocks or reports failure to the caller.
package audio

import (
	"log"

	"github.com/automoto/ringrush/config"
)

// Player is the audio collaborator.
type Player interface {
	Play(event string, volume float64)
}

// Event is one recorded Play call.
type Event struct {
	Name   string
	Volume float64
}

// PlaySound plays a configured sound on p. A nil player is silent.
func PlaySound(p Player, id config.SoundID) {
	if p == nil || id == config.SoundNone {
		return
	}
	p.Play(id.EventName(), id.Volume())
}

// Recorder collects events so a tick can report them.
type Recorder struct {
	events []Event
}

// Play records the event.
func (r *Recorder) Play(event string, volume float64) {
	r.events = append(r.events, Event{Name: event, Volume: volume})
}

// Drain returns the recorded events and clears the recorder.
func (r *Recorder) Drain() []Event {
	out := r.events
	r.events = nil
	return out
}

// LogPlayer writes every event to the standard logger.
type LogPlayer struct{}

// Play logs the event.
func (LogPlayer) Play(event string, volume float64) {
	log.Printf("audio: %s (volume %.2f)", event, volume)
}

// Nop discards every event.
type Nop struct{}

// Play does nothing.
func (Nop) Play(string, float64) {}
