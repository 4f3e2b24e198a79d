package factory

import (
	"github.com/automoto/fruitfight/archetypes"
	"github.com/automoto/fruitfight/combat"
	"github.com/automoto/fruitfight/components"
	cfg "github.com/automoto/fruitfight/config"
	"github.com/automoto/fruitfight/shared/gamemath"
	"github.com/automoto/fruitfight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the controlled actor centered on pos.
func CreatePlayer(ecs *ecs.ECS, pos dmath.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.Size
	obj := resolv.NewObject(pos.X-size/2, pos.Y-size/2, size, size, tags.ResolvFriendly)
	obj.Data = player.Entity()
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Combatant.SetValue(player, components.CombatantData{
		Name:    "Player",
		Faction: combat.Friendly,
		Damage:  cfg.Player.Damage,
		Armor:   cfg.Player.Armor,
		Speed:   cfg.Player.Speed,
		Facing:  gamemath.Right,
	})
	components.Health.SetValue(player, components.HealthData{
		Current:    cfg.Player.Health,
		Max:        cfg.Player.Health,
		RegenRate:  cfg.Player.RegenRate,
		RegenTimer: cfg.Health.RegenInterval,
	})

	return player
}
