package factory

import (
	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/archetypes"
	"github.com/automoto/fruitfight/combat"
	"github.com/automoto/fruitfight/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAreaEffect spawns a zone at the intent's position.
func CreateAreaEffect(ecs *ecs.ECS, intent components.TriggerIntent, spec abilities.AreaSpec) *donburi.Entry {
	a := archetypes.AreaEffect.Spawn(ecs)

	components.AreaEffect.SetValue(a, components.AreaEffectData{
		Owner:         intent.Caster,
		OwnerFaction:  intent.Faction,
		Source:        intent.Key,
		Effect:        spec.Effect,
		Position:      intent.Position,
		Radius:        spec.Radius,
		DamagePerTick: combat.Scale(spec.DamagePerTick, intent.DamageBonus),
		DamageType:    spec.DamageType,
		TickInterval:  spec.TickInterval,
		TickRemaining: spec.TickInterval,
		Remaining:     spec.Duration,
	})

	return a
}
