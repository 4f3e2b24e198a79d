package components

import (
	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/combat"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type SummonData struct {
	Owner        donburi.Entity
	OwnerFaction combat.Faction
	Kind         abilities.SummonKind

	Remaining float64
	Damage    int

	// Orbiting summons sweep Orbit from 0 to 2*pi and loop; Offset spreads
	// siblings evenly around the owner.
	Orbit  *gween.Tween
	Offset float64

	HitCooldowns map[donburi.Entity]float64
	FireTimer    float64
}

var Summon = donburi.NewComponentType[SummonData]()
