// Package combat holds the pure arithmetic of the damage pipeline. It has no
// dependency on the ECS so every rule can be tested in isolation.
package combat

import "math"

// DamageType selects how a hit interacts with armor.
type DamageType int

const (
	Physical DamageType = iota
	Magic
	Fire
	Ice
	Poison
	True
)

func (d DamageType) String() string {
	switch d {
	case Physical:
		return "physical"
	case Magic:
		return "magic"
	case Fire:
		return "fire"
	case Ice:
		return "ice"
	case Poison:
		return "poison"
	case True:
		return "true"
	}
	return "unknown"
}

// Rules are the tunables Mitigate needs.
type Rules struct {
	MinimumDamage   int
	MagicMultiplier float64
}

// Mitigate returns the damage left after armor and the damage-type
// multiplier. True damage ignores armor entirely. Every other type is
// floored at MinimumDamage after armor, and Magic is then scaled and
// truncated toward zero.
func Mitigate(raw, armor int, dt DamageType, r Rules) int {
	if dt == True {
		return raw
	}

	dmg := raw - armor
	if dmg < r.MinimumDamage {
		dmg = r.MinimumDamage
	}
	if dt == Magic {
		dmg = int(float64(dmg) * r.MagicMultiplier)
	}
	return dmg
}

// Scale applies a fractional bonus to an outgoing damage value, truncating.
// A bonus of 0.25 turns 40 into 50.
func Scale(raw int, bonus float64) int {
	if bonus == 0 {
		return raw
	}
	return int(float64(raw) * (1 + bonus))
}

// Fraction returns int(amount * f), used for life steal.
func Fraction(amount int, f float64) int {
	if amount <= 0 || f <= 0 {
		return 0
	}
	return int(math.Floor(float64(amount) * f))
}
