package systems

import (
	"math"

	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/combat"
	"github.com/automoto/fruitfight/components"
	cfg "github.com/automoto/fruitfight/config"
	"github.com/automoto/fruitfight/shared/gamemath"
	"github.com/automoto/fruitfight/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateAbilities advances every slot's cooldown and fires the ready ones
// that can resolve a target. Each firing queues a TriggerIntent on the
// session for the spawn systems later in the tick.
func UpdateAbilities(ecs *ecs.ECS) {
	s := sessionData(ecs.World)
	if s == nil {
		return
	}
	s.Intents = s.Intents[:0]

	var casters []*donburi.Entry
	components.AbilitySlots.Each(ecs.World, func(e *donburi.Entry) {
		casters = append(casters, e)
	})
	if len(casters) == 0 {
		return
	}
	actors := liveActors(ecs.World)

	for _, e := range casters {
		if !alive(e) {
			continue
		}
		slots := components.AbilitySlots.Get(e)
		scale, bonus := casterScaling(e)
		pos := centerOf(e)
		faction := factionOf(e)
		facing := facingOf(e)

		for i := range slots.Slots {
			slot := &slots.Slots[i]
			slot.Advance(s.Dt)
			if !slot.IsReady(s.Catalog, scale) {
				continue
			}
			def, _ := s.Catalog.Lookup(slot.Key)

			dirs, ok := resolveTargeting(actors, slot, def.Payload, pos, faction, facing)
			if !ok {
				// No target: the cooldown is kept so the slot fires the
				// moment one appears.
				continue
			}
			slot.Trigger()

			s.Intents = append(s.Intents, components.TriggerIntent{
				Caster:      e.Entity(),
				Faction:     faction,
				Key:         slot.Key,
				Definition:  def,
				Position:    pos,
				Directions:  dirs,
				DamageBonus: bonus,
			})
			messages.AbilityTriggeredEvent.Publish(ecs.World, messages.AbilityTriggered{
				Caster:   e.Entity(),
				Key:      slot.Key,
				Name:     def.Name,
				Position: pos,
			})
		}
	}
}

// resolveTargeting returns the directions a payload fires in. Only
// projectile payloads can fail to find a target.
func resolveTargeting(actors []actor, slot *abilities.Slot, p abilities.Payload, pos dmath.Vec2, faction combat.Faction, facing dmath.Vec2) ([]dmath.Vec2, bool) {
	if p.Kind != abilities.PayloadProjectile {
		return nil, true
	}
	spec := p.Projectile

	switch spec.Targeting {
	case abilities.Nearest:
		target, ok := nearestOpposing(actors, pos, faction, cfg.Targeting.MaxRange)
		if !ok {
			return nil, false
		}
		return []dmath.Vec2{gamemath.Direction(pos, target.pos, facing)}, true

	case abilities.AllDirections:
		return gamemath.Spread(countOr(spec.Count, cfg.Projectile.AllDirections), 0), true

	case abilities.Forward:
		return []dmath.Vec2{facing}, true

	case abilities.Spiral:
		dirs := gamemath.Spread(countOr(spec.Count, cfg.Projectile.SpiralCount), slot.SpiralPhase)
		slot.SpiralPhase = math.Mod(slot.SpiralPhase+cfg.Projectile.SpiralStep, 2*math.Pi)
		return dirs, true
	}
	return nil, false
}

func countOr(n, fallback int) int {
	if n > 0 {
		return n
	}
	return fallback
}

// casterScaling returns the cooldown scale and outgoing damage bonus from
// talents and active buffs.
func casterScaling(e *donburi.Entry) (cooldownScale, damageBonus float64) {
	cooldownScale = 1
	if e.HasComponent(components.Modifiers) {
		m := components.Modifiers.Get(e)
		cut := math.Max(0, math.Min(m.CooldownReduction, cfg.Combat.MaxCooldownCut))
		cooldownScale = 1 - cut
		damageBonus = m.DamageBonus
	}
	if e.HasComponent(components.Buffs) {
		damageBonus += components.Buffs.Get(e).Totals().Damage
	}
	return cooldownScale, damageBonus
}

func facingOf(e *donburi.Entry) dmath.Vec2 {
	if e.HasComponent(components.Combatant) {
		if f, ok := gamemath.Normalize(components.Combatant.Get(e).Facing); ok {
			return f
		}
	}
	return gamemath.Right
}
