package systems

import (
	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/components"
	"github.com/automoto/fruitfight/shared/gamemath"
	"github.com/automoto/fruitfight/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAreaEffects ticks every zone, pulses the ones whose interval
// elapsed and expires the ones whose duration ran out. Zones queued this
// tick are spawned last.
func UpdateAreaEffects(ecs *ecs.ECS) {
	s := sessionData(ecs.World)
	if s == nil {
		return
	}

	var zones []*donburi.Entry
	components.AreaEffect.Each(ecs.World, func(e *donburi.Entry) {
		zones = append(zones, e)
	})

	var toRemove []*donburi.Entry
	for _, e := range zones {
		a := components.AreaEffect.Get(e)
		a.TickRemaining -= s.Dt
		a.Remaining -= s.Dt

		if a.TickRemaining <= 0 {
			a.TickRemaining = a.TickInterval
			pulse(ecs.World, a)
		}
		if a.Remaining <= 0 {
			toRemove = append(toRemove, e)
		}
	}

	for _, e := range toRemove {
		destroy(ecs, e)
	}

	for _, intent := range s.Intents {
		if intent.Definition.Payload.Kind == abilities.PayloadArea {
			factory.CreateAreaEffect(ecs, intent, intent.Definition.Payload.Area)
		}
	}
}

// pulse applies one tick of a zone. The sign of DamagePerTick picks the
// side: positive damages the owner's enemies, negative heals its allies.
func pulse(w donburi.World, a *components.AreaEffectData) {
	if a.DamagePerTick == 0 {
		return
	}
	heal := a.DamagePerTick < 0

	for _, t := range liveActors(w) {
		if heal == a.OwnerFaction.Opposes(t.faction) {
			continue
		}
		if !gamemath.WithinRadius(a.Position, t.pos, a.Radius) {
			continue
		}
		if heal {
			ApplyHeal(w, a.Owner, t.entry, -a.DamagePerTick)
			continue
		}
		ResolveHit(w, t.entry, Hit{
			Attacker: a.Owner,
			Faction:  a.OwnerFaction,
			Raw:      a.DamagePerTick,
			Type:     a.DamageType,
		})
	}
}
