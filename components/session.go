package components

import (
	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/combat"
	"github.com/automoto/fruitfight/combo"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// TriggerIntent is produced by targeting when an ability fires and consumed
// by the spawn systems within the same tick.
type TriggerIntent struct {
	Caster      donburi.Entity
	Faction     combat.Faction
	Key         abilities.Key
	Definition  abilities.Definition
	Position    dmath.Vec2
	Directions  []dmath.Vec2
	DamageBonus float64
}

// SessionData is the per-run state shared by every system: the catalog, the
// combo tracker, the tick clock and the pending trigger intents.
type SessionData struct {
	Catalog *abilities.Catalog
	Combo   *combo.Tracker

	Dt      float64
	Elapsed float64
	Ticks   int

	// Arena bounds for projectile exit checks. Zero means unbounded.
	Width, Height float64

	Intents []TriggerIntent
}

var Session = donburi.NewComponentType[SessionData]()
