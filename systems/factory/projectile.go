package factory

import (
	"github.com/automoto/fruitfight/abilities"
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

// CreateProjectile spawns one projectile for intent flying along dir.
func CreateProjectile(ecs *ecs.ECS, intent components.TriggerIntent, spec abilities.ProjectileSpec, dir dmath.Vec2) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	size := cfg.Projectile.ColliderSize
	obj := resolv.NewObject(intent.Position.X-size/2, intent.Position.Y-size/2, size, size, tags.ResolvProjectile)
	obj.Data = p.Entity()
	components.Object.SetValue(p, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:        intent.Caster,
		OwnerFaction: intent.Faction,
		Source:       intent.Key,
		Visual:       spec.Visual,
		Damage:       combat.Scale(spec.Damage, intent.DamageBonus),
		DamageType:   spec.DamageType,
		Pierce:       spec.Pierce,
		HitTargets:   make(map[donburi.Entity]struct{}),
		Lifetime:     cfg.Projectile.Lifetime,
		Velocity:     gamemath.Scale(dir, spec.Speed),
		Speed:        spec.Speed,
		Homing:       spec.Homing,
	})

	return p
}
