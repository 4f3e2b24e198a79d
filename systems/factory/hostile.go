package factory

import (
	"github.com/automoto/fruitfight/archetypes"
	"github.com/automoto/fruitfight/combat"
	"github.com/automoto/fruitfight/components"
	cfg "github.com/automoto/fruitfight/config"
	"github.com/automoto/fruitfight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateHostile spawns a hostile actor of the given type centered on pos.
func CreateHostile(ecs *ecs.ECS, hostileType cfg.HostileTypeConfig, pos dmath.Vec2) *donburi.Entry {
	hostile := archetypes.Hostile.Spawn(ecs)

	size := hostileType.Size
	obj := resolv.NewObject(pos.X-size/2, pos.Y-size/2, size, size, tags.ResolvHostile)
	obj.Data = hostile.Entity()
	components.Object.SetValue(hostile, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Combatant.SetValue(hostile, components.CombatantData{
		Name:    hostileType.Name,
		Faction: combat.Hostile,
		Damage:  hostileType.Damage,
		Armor:   hostileType.Armor,
		Speed:   hostileType.Speed,
		Boss:    hostileType.Boss,
		Facing:  dmath.NewVec2(-1, 0),
	})
	components.Health.SetValue(hostile, components.HealthData{
		Current: hostileType.Health,
		Max:     hostileType.Health,
	})

	return hostile
}
