package components

import (
	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/combat"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type AreaEffectData struct {
	Owner        donburi.Entity
	OwnerFaction combat.Faction
	Source       abilities.Key
	Effect       abilities.AreaKind

	Position      dmath.Vec2
	Radius        float64
	DamagePerTick int // negative heals
	DamageType    combat.DamageType

	TickInterval  float64
	TickRemaining float64
	Remaining     float64
}

var AreaEffect = donburi.NewComponentType[AreaEffectData]()
