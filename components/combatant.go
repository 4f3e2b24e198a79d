package components

import (
	"github.com/automoto/fruitfight/combat"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CombatantData holds the stats the damage pipeline reads.
type CombatantData struct {
	Name    string
	Faction combat.Faction
	Damage  int // contact damage
	Armor   int
	Speed   float64
	Boss    bool
	Facing  dmath.Vec2
}

var Combatant = donburi.NewComponentType[CombatantData]()
