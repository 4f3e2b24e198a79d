package components

import "github.com/yohamta/donburi"

// HealthData keeps 0 <= Current <= Max.
type HealthData struct {
	Current int
	Max     int

	// RegenRate is hit points per second, applied on every regen tick.
	RegenRate  float64
	RegenTimer float64
	regenCarry float64
}

// TakeDamage lowers Current by amount, clamping at zero, and returns how
// much was actually removed.
func (h *HealthData) TakeDamage(amount int) int {
	if amount <= 0 || h.Current == 0 {
		return 0
	}
	if amount > h.Current {
		amount = h.Current
	}
	h.Current -= amount
	return amount
}

// Heal raises Current by amount, clamping at Max, and returns how much was
// actually restored.
func (h *HealthData) Heal(amount int) int {
	if amount <= 0 || h.Current >= h.Max {
		return 0
	}
	if h.Current+amount > h.Max {
		amount = h.Max - h.Current
	}
	h.Current += amount
	return amount
}

// Regenerate accumulates RegenRate over interval seconds and heals the whole
// points gathered so far.
func (h *HealthData) Regenerate(interval float64) int {
	if h.RegenRate <= 0 {
		return 0
	}
	h.regenCarry += h.RegenRate * interval
	whole := int(h.regenCarry)
	h.regenCarry -= float64(whole)
	return h.Heal(whole)
}

func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
