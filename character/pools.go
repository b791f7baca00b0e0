package character

import (
	"github.com/automoto/ringrush/config"
	"github.com/go-gl/mathgl/mgl64"
)

// Pools holds the resources that gate abilities. Every mutation clamps to
// the configured bounds.
type Pools struct {
	SpinCharge float64
	Boost      float64

	maxCharge float64
	maxBoost  float64
}

// NewPools starts with an empty spin charge and a full boost gauge.
func NewPools(cfg config.AbilityConfig) Pools {
	return Pools{
		Boost:     cfg.MaxBoost,
		maxCharge: cfg.MaxSpinCharge,
		maxBoost:  cfg.MaxBoost,
	}
}

// AddCharge accumulates spin charge.
func (p *Pools) AddCharge(amount float64) {
	p.SpinCharge = mgl64.Clamp(p.SpinCharge+amount, 0, p.maxCharge)
}

// ResetCharge empties the spin charge.
func (p *Pools) ResetCharge() {
	p.SpinCharge = 0
}

// DrainBoost spends energy and reports whether any is left.
func (p *Pools) DrainBoost(amount float64) bool {
	p.Boost = mgl64.Clamp(p.Boost-amount, 0, p.maxBoost)
	return p.Boost > 0
}

// RechargeBoost regenerates energy.
func (p *Pools) RechargeBoost(amount float64) {
	p.Boost = mgl64.Clamp(p.Boost+amount, 0, p.maxBoost)
}

// RestoreBoost fills the gauge.
func (p *Pools) RestoreBoost() {
	p.Boost = p.maxBoost
}

// MaxCharge is the spin charge cap.
func (p Pools) MaxCharge() float64 { return p.maxCharge }

// MaxBoost is the boost gauge cap.
func (p Pools) MaxBoost() float64 { return p.maxBoost }
