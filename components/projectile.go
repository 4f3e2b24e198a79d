package components

import (
	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/combat"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type ProjectileData struct {
	Owner        donburi.Entity
	OwnerFaction combat.Faction
	Source       abilities.Key
	Visual       abilities.Visual

	Damage     int
	DamageType combat.DamageType
	Pierce     int
	HitTargets map[donburi.Entity]struct{}

	Lifetime float64
	Velocity dmath.Vec2
	Speed    float64
	Homing   float64 // radians per second, 0 flies straight
}

var Projectile = donburi.NewComponentType[ProjectileData]()
