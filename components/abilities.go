package components

import (
	"github.com/automoto/fruitfight/abilities"
	"github.com/yohamta/donburi"
)

// AbilitySlotsData is the equipped loadout of an actor and the cooldown
// state of each of its slots.
type AbilitySlotsData struct {
	Loadout abilities.Loadout
	Slots   abilities.Slots
}

// ModifiersData holds multipliers written back by meta-progression.
type ModifiersData struct {
	CooldownReduction float64
	DamageBonus       float64
}

var AbilitySlots = donburi.NewComponentType[AbilitySlotsData]()
var Modifiers = donburi.NewComponentType[ModifiersData]()
