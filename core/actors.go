package core

import (
	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/combat"
	"github.com/automoto/fruitfight/components"
	"github.com/automoto/fruitfight/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Equip replaces the loadout of actor and rebuilds its ability slots. Slots
// whose key did not change keep their cooldown.
func (s *Session) Equip(actor donburi.Entity, l abilities.Loadout) bool {
	e, ok := s.entry(actor)
	if !ok {
		return false
	}
	if !e.HasComponent(components.AbilitySlots) {
		donburi.Add(e, components.AbilitySlots, &components.AbilitySlotsData{})
	}
	slots := components.AbilitySlots.Get(e)
	slots.Loadout = l
	slots.Slots = abilities.Rebuild(slots.Slots, l, s.catalog)
	return true
}

// EquipItem pushes item onto the front of the actor's loadout. The oldest
// item falls off when all three slots are taken and is returned.
func (s *Session) EquipItem(actor donburi.Entity, item abilities.ItemKind) (dropped abilities.ItemKind, full bool, ok bool) {
	e, ok := s.entry(actor)
	if !ok {
		return 0, false, false
	}
	var l abilities.Loadout
	if e.HasComponent(components.AbilitySlots) {
		l = components.AbilitySlots.Get(e).Loadout
	}
	dropped, full = l.Push(item)
	return dropped, full, s.Equip(actor, l)
}

// Loadout returns the items currently equipped by actor.
func (s *Session) Loadout(actor donburi.Entity) (abilities.Loadout, bool) {
	e, ok := s.entry(actor)
	if !ok || !e.HasComponent(components.AbilitySlots) {
		return abilities.Loadout{}, false
	}
	return components.AbilitySlots.Get(e).Loadout, true
}

// Slots returns the cooldown state of actor's ability slots.
func (s *Session) Slots(actor donburi.Entity) (abilities.Slots, bool) {
	e, ok := s.entry(actor)
	if !ok || !e.HasComponent(components.AbilitySlots) {
		return abilities.Slots{}, false
	}
	return components.AbilitySlots.Get(e).Slots, true
}

// SetModifiers writes talent multipliers back onto actor.
func (s *Session) SetModifiers(actor donburi.Entity, m components.ModifiersData) bool {
	e, ok := s.entry(actor)
	if !ok {
		return false
	}
	if !e.HasComponent(components.Modifiers) {
		donburi.Add(e, components.Modifiers, &m)
		return true
	}
	components.Modifiers.SetValue(e, m)
	return true
}

// Move places actor's center at pos.
func (s *Session) Move(actor donburi.Entity, pos dmath.Vec2) bool {
	e, ok := s.entry(actor)
	if !ok || !e.HasComponent(components.Object) {
		return false
	}
	components.Object.Get(e).SetCenter(pos)
	return true
}

// Face sets the direction Forward abilities fire in. A zero vector is
// ignored.
func (s *Session) Face(actor donburi.Entity, dir dmath.Vec2) bool {
	e, ok := s.entry(actor)
	if !ok || !e.HasComponent(components.Combatant) {
		return false
	}
	n, ok := gamemath.Normalize(dir)
	if !ok {
		return false
	}
	components.Combatant.Get(e).Facing = n
	return true
}

// Position returns actor's center.
func (s *Session) Position(actor donburi.Entity) (dmath.Vec2, bool) {
	e, ok := s.entry(actor)
	if !ok || !e.HasComponent(components.Object) {
		return dmath.Vec2{}, false
	}
	return components.Object.Get(e).Center(), true
}

// SpeedMultiplier is the movement factor granted by active speed buffs.
func (s *Session) SpeedMultiplier(actor donburi.Entity) float64 {
	e, ok := s.entry(actor)
	if !ok || !e.HasComponent(components.Buffs) {
		return 1
	}
	return 1 + components.Buffs.Get(e).Totals().Speed
}

// Health returns the current and maximum health of actor.
func (s *Session) Health(actor donburi.Entity) (current, max int, ok bool) {
	e, ok := s.entry(actor)
	if !ok || !e.HasComponent(components.Health) {
		return 0, 0, false
	}
	hp := components.Health.Get(e)
	return hp.Current, hp.Max, true
}

// Alive reports whether actor still exists and has not died.
func (s *Session) Alive(actor donburi.Entity) bool {
	e, ok := s.entry(actor)
	return ok && e.HasComponent(components.Health) && !e.HasComponent(components.Death)
}

// Faction returns the side actor fights for.
func (s *Session) Faction(actor donburi.Entity) (combat.Faction, bool) {
	e, ok := s.entry(actor)
	if !ok || !e.HasComponent(components.Combatant) {
		return 0, false
	}
	return components.Combatant.Get(e).Faction, true
}
