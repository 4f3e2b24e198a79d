package components

import (
	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/combat"
	"github.com/yohamta/donburi"
)

type ActiveBuff struct {
	Source    abilities.Key
	Modifier  combat.StatModifier
	Remaining float64
}

type BuffsData struct {
	Active []ActiveBuff
}

// Apply adds a buff, refreshing the duration if the same ability already
// granted one.
func (b *BuffsData) Apply(source abilities.Key, m combat.StatModifier, duration float64) {
	for i := range b.Active {
		if b.Active[i].Source == source {
			b.Active[i].Modifier = m
			b.Active[i].Remaining = duration
			return
		}
	}
	b.Active = append(b.Active, ActiveBuff{Source: source, Modifier: m, Remaining: duration})
}

// Totals sums every active modifier.
func (b *BuffsData) Totals() combat.Totals {
	var t combat.Totals
	for _, a := range b.Active {
		t = t.Add(a.Modifier)
	}
	return t
}

var Buffs = donburi.NewComponentType[BuffsData]()
