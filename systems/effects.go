package systems

import (
	"github.com/automoto/ringrush/components"
	"github.com/yohamta/donburi"
)

// UpdateAutoDestroy counts down transient entities and removes the expired
// ones.
func UpdateAutoDestroy(w donburi.World, dt float64) {
	var toRemove []donburi.Entity

	components.AutoDestroy.Each(w, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.Remaining -= dt
		if ad.Remaining <= 0 {
			toRemove = append(toRemove, e.Entity())
		}
	})

	for _, e := range toRemove {
		Destroy(w, e)
	}
}
