package systems

import (
	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBuffs counts down active buffs and applies the ones queued this
// tick to their casters.
func UpdateBuffs(ecs *ecs.ECS) {
	s := sessionData(ecs.World)
	if s == nil {
		return
	}

	components.Buffs.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Buffs.Get(e)
		kept := b.Active[:0]
		for _, a := range b.Active {
			a.Remaining -= s.Dt
			if a.Remaining > 0 {
				kept = append(kept, a)
			}
		}
		b.Active = kept
	})

	for _, intent := range s.Intents {
		if intent.Definition.Payload.Kind != abilities.PayloadBuff {
			continue
		}
		if !ecs.World.Valid(intent.Caster) {
			continue
		}
		caster := ecs.World.Entry(intent.Caster)
		if !alive(caster) {
			continue
		}
		if !caster.HasComponent(components.Buffs) {
			donburi.Add(caster, components.Buffs, &components.BuffsData{})
		}
		spec := intent.Definition.Payload.Buff
		components.Buffs.Get(caster).Apply(intent.Key, spec.Modifier, spec.Duration)
	}
}
