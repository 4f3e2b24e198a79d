package combat

// StatKind identifies which stat a buff modifies.
type StatKind int

const (
	SpeedBoost StatKind = iota
	DamageBoost
	ArmorBoost
	LifeSteal
)

func (k StatKind) String() string {
	switch k {
	case SpeedBoost:
		return "speed_boost"
	case DamageBoost:
		return "damage_boost"
	case ArmorBoost:
		return "armor_boost"
	case LifeSteal:
		return "life_steal"
	}
	return "unknown"
}

// StatModifier is a single buff effect. ArmorBoost uses Flat, the others use
// Factor (0.3 means +30%).
type StatModifier struct {
	Kind   StatKind
	Factor float64
	Flat   int
}

// Totals is the sum of every active modifier on an actor.
type Totals struct {
	Speed  float64
	Damage float64
	Armor  int
	Steal  float64
}

// Add folds m into t.
func (t Totals) Add(m StatModifier) Totals {
	switch m.Kind {
	case SpeedBoost:
		t.Speed += m.Factor
	case DamageBoost:
		t.Damage += m.Factor
	case ArmorBoost:
		t.Armor += m.Flat
	case LifeSteal:
		t.Steal += m.Factor
	}
	return t
}
