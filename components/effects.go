package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BlinkData pulses an entity's alpha while it is invincible.
type BlinkData struct {
	Tween  *gween.Tween // Current half cycle, nil when not blinking
	Fading bool         // True while the alpha is heading down
	Alpha  float64
}

var Blink = donburi.NewComponentType[BlinkData]()

// AutoDestroyData marks entities that should be removed after a duration.
type AutoDestroyData struct {
	Remaining float64 // Seconds until removal
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
