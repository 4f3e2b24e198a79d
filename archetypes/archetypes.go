package archetypes

import (
	"github.com/automoto/fruitfight/components"
	cfg "github.com/automoto/fruitfight/config"
	"github.com/automoto/fruitfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		tags.Friendly,
		components.Combatant,
		components.Object,
		components.Health,
		components.AbilitySlots,
		components.Modifiers,
		components.Buffs,
	)
	Hostile = newArchetype(
		tags.Hostile,
		components.Combatant,
		components.Object,
		components.Health,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	AreaEffect = newArchetype(
		tags.AreaEffect,
		components.AreaEffect,
	)
	Summon = newArchetype(
		tags.Summon,
		components.Summon,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
