package systems

import (
	"github.com/automoto/ringrush/components"
	"github.com/automoto/ringrush/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateBlink pulses the alpha of blinking entities between 1 and the
// configured minimum while invincible. When invincibility ends the pulse
// stops and the alpha is restored.
func UpdateBlink(w donburi.World, dt float64, invincible bool, cfg config.CharacterConfig) {
	half := float32(cfg.BlinkPeriod / 2)
	low := float32(cfg.BlinkMinAlpha)

	components.Blink.Each(w, func(e *donburi.Entry) {
		b := components.Blink.Get(e)
		if !invincible || half <= 0 {
			b.Tween = nil
			b.Fading = false
			b.Alpha = 1
			return
		}

		if b.Tween == nil {
			b.Tween = gween.New(1, low, half, ease.Linear)
			b.Fading = true
		}
		alpha, done := b.Tween.Update(float32(dt))
		b.Alpha = float64(alpha)
		if done {
			if b.Fading {
				b.Tween = gween.New(low, 1, half, ease.Linear)
			} else {
				b.Tween = gween.New(1, low, half, ease.Linear)
			}
			b.Fading = !b.Fading
		}
	})
}
