package systems

import (
	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/components"
	cfg "github.com/automoto/fruitfight/config"
	"github.com/automoto/fruitfight/shared/gamemath"
	"github.com/automoto/fruitfight/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSummons moves, expires and fights with summons, then spawns the
// ones queued this tick. Summons die with their owner.
func UpdateSummons(ecs *ecs.ECS) {
	s := sessionData(ecs.World)
	if s == nil {
		return
	}

	var summons []*donburi.Entry
	components.Summon.Each(ecs.World, func(e *donburi.Entry) {
		summons = append(summons, e)
	})

	var toRemove []*donburi.Entry
	var actors []actor
	for _, e := range summons {
		sm := components.Summon.Get(e)
		sm.Remaining -= s.Dt
		if sm.Remaining <= 0 || !ecs.World.Valid(sm.Owner) || !alive(ecs.World.Entry(sm.Owner)) {
			toRemove = append(toRemove, e)
			continue
		}
		owner := ecs.World.Entry(sm.Owner)
		obj := components.Object.Get(e)

		for target, cd := range sm.HitCooldowns {
			if cd-s.Dt <= 0 {
				delete(sm.HitCooldowns, target)
				continue
			}
			sm.HitCooldowns[target] = cd - s.Dt
		}

		if sm.Kind == abilities.Turret {
			if actors == nil {
				actors = liveActors(ecs.World)
			}
			fireTurret(ecs, sm, obj, actors, s.Dt)
			continue
		}

		angle, done := sm.Orbit.Update(float32(s.Dt))
		if done {
			sm.Orbit.Reset()
		}
		obj.SetCenter(factory.SummonPosition(centerOf(owner), sm.Offset, float64(angle)))

		for _, t := range overlapping(ecs.World, obj.Object, opposingTag(sm.OwnerFaction)) {
			if _, cooling := sm.HitCooldowns[t.Entity()]; cooling {
				continue
			}
			ResolveHit(ecs.World, t, Hit{
				Attacker: sm.Owner,
				Faction:  sm.OwnerFaction,
				Raw:      sm.Damage,
			})
			sm.HitCooldowns[t.Entity()] = cfg.Summon.HitInterval
		}
	}

	for _, e := range toRemove {
		destroy(ecs, e)
	}

	for _, intent := range s.Intents {
		if intent.Definition.Payload.Kind != abilities.PayloadSummon {
			continue
		}
		spec := intent.Definition.Payload.Summon
		for i := 0; i < spec.Count; i++ {
			factory.CreateSummon(ecs, intent, spec, i)
		}
	}
}

// fireTurret shoots at the nearest enemy in range whenever the turret's
// timer allows. Without a target the turret stays loaded.
func fireTurret(ecs *ecs.ECS, sm *components.SummonData, obj *components.ObjectData, actors []actor, dt float64) {
	sm.FireTimer -= dt
	if sm.FireTimer > 0 {
		return
	}
	pos := obj.Center()
	target, ok := nearestOpposing(actors, pos, sm.OwnerFaction, cfg.Targeting.MaxRange)
	if !ok {
		sm.FireTimer = 0
		return
	}
	sm.FireTimer = cfg.Summon.TurretRate

	// Damage was scaled when the turret was summoned.
	intent := components.TriggerIntent{
		Caster:   sm.Owner,
		Faction:  sm.OwnerFaction,
		Position: pos,
	}
	spec := abilities.ProjectileSpec{
		Damage:    sm.Damage,
		Speed:     cfg.Summon.TurretSpeed,
		Targeting: abilities.Nearest,
		Visual:    abilities.VisualEnergy,
	}
	factory.CreateProjectile(ecs, intent, spec, gamemath.Direction(pos, target.pos, gamemath.Right))
}
