package factory

import (
	"math"

	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/archetypes"
	"github.com/automoto/fruitfight/combat"
	"github.com/automoto/fruitfight/components"
	cfg "github.com/automoto/fruitfight/config"
	"github.com/automoto/fruitfight/shared/gamemath"
	"github.com/automoto/fruitfight/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateSummon spawns summon number index of count for intent. Orbiting
// kinds are spread evenly around the caster; turrets are laid out in a row
// beside it.
func CreateSummon(ecs *ecs.ECS, intent components.TriggerIntent, spec abilities.SummonSpec, index int) *donburi.Entry {
	s := archetypes.Summon.Spawn(ecs)

	offset := 2 * math.Pi * float64(index) / float64(spec.Count)
	pos := SummonPosition(intent.Position, offset, 0)
	if spec.Kind == abilities.Turret {
		pos = dmath.NewVec2(intent.Position.X+cfg.Summon.TurretOffsetX*float64(index+1), intent.Position.Y)
	}

	size := cfg.Summon.Size
	obj := resolv.NewObject(pos.X-size/2, pos.Y-size/2, size, size, tags.ResolvSummon)
	obj.Data = s.Entity()
	components.Object.SetValue(s, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	data := components.SummonData{
		Owner:        intent.Caster,
		OwnerFaction: intent.Faction,
		Kind:         spec.Kind,
		Remaining:    spec.Duration,
		Damage:       combat.Scale(cfg.Summon.Damage, intent.DamageBonus),
		Offset:       offset,
		HitCooldowns: make(map[donburi.Entity]float64),
	}
	if spec.Kind == abilities.Turret {
		data.Damage = combat.Scale(cfg.Summon.TurretDamage, intent.DamageBonus)
	} else {
		data.Orbit = gween.New(0, float32(2*math.Pi), float32(cfg.Summon.OrbitPeriod), ease.Linear)
	}
	components.Summon.SetValue(s, data)

	return s
}

// SummonPosition is where an orbiting summon sits for the given angles.
func SummonPosition(center dmath.Vec2, offset, angle float64) dmath.Vec2 {
	dir := gamemath.FromAngle(offset + angle)
	return dmath.NewVec2(center.X+dir.X*cfg.Summon.OrbitRadius, center.Y+dir.Y*cfg.Summon.OrbitRadius)
}
