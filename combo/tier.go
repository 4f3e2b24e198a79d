package combo

// Tier is a combo reward band.
type Tier int

const (
	None Tier = iota
	Bronze
	Silver
	Gold
	Platinum
	Diamond
)

type tierInfo struct {
	name       string
	threshold  int
	multiplier float64
	bonus      int
}

// Ordered by threshold; TierFor walks it from the top.
var tiers = [...]tierInfo{
	None:     {"None", 0, 1.0, 0},
	Bronze:   {"Bronze", 10, 1.25, 10},
	Silver:   {"Silver", 25, 1.5, 25},
	Gold:     {"Gold", 50, 2.0, 50},
	Platinum: {"Platinum", 100, 3.0, 100},
	Diamond:  {"Diamond", 200, 5.0, 250},
}

// TierFor maps a combo count to its tier.
func TierFor(combo int) Tier {
	for t := Diamond; t > None; t-- {
		if combo >= tiers[t].threshold {
			return t
		}
	}
	return None
}

func (t Tier) String() string {
	if t < None || t > Diamond {
		return "Unknown"
	}
	return tiers[t].name
}

// Multiplier is the reward multiplier for the tier.
func (t Tier) Multiplier() float64 {
	if t < None || t > Diamond {
		return 1.0
	}
	return tiers[t].multiplier
}

// Bonus is the currency paid out when a combo ends while the run's max combo
// sits at this tier.
func (t Tier) Bonus() int {
	if t < None || t > Diamond {
		return 0
	}
	return tiers[t].bonus
}

// Threshold is the smallest combo count that reaches the tier.
func (t Tier) Threshold() int {
	if t < None || t > Diamond {
		return 0
	}
	return tiers[t].threshold
}
