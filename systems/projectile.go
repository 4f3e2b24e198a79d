package systems

import (
	"sort"

	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/components"
	cfg "github.com/automoto/fruitfight/config"
	"github.com/automoto/fruitfight/shared/gamemath"
	"github.com/automoto/fruitfight/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves and collides live projectiles, then spawns the
// ones queued this tick. New projectiles are first checked for collisions
// on the following tick.
func UpdateProjectiles(ecs *ecs.ECS) {
	s := sessionData(ecs.World)
	if s == nil {
		return
	}

	var projectiles []*donburi.Entry
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		projectiles = append(projectiles, e)
	})

	var toRemove []*donburi.Entry
	var actors []actor
	for _, e := range projectiles {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		p.Lifetime -= s.Dt
		if p.Lifetime <= 0 {
			toRemove = append(toRemove, e)
			continue
		}

		pos := obj.Center()
		if p.Homing > 0 {
			if actors == nil {
				actors = liveActors(ecs.World)
			}
			if target, ok := nearestOpposing(actors, pos, p.OwnerFaction, 0); ok {
				heading, ok := gamemath.Normalize(p.Velocity)
				if !ok {
					heading = gamemath.Right
				}
				heading = gamemath.RotateToward(heading, gamemath.Direction(pos, target.pos, heading), p.Homing*s.Dt)
				p.Velocity = gamemath.Scale(heading, p.Speed)
			}
		}

		pos = gamemath.Translate(pos, p.Velocity, s.Dt)
		obj.SetCenter(pos)

		if gamemath.OutOfBounds(pos, s.Width, s.Height, cfg.Projectile.ExitMargin) {
			toRemove = append(toRemove, e)
			continue
		}

		if collideProjectile(ecs.World, p, obj) {
			toRemove = append(toRemove, e)
		}
	}

	for _, e := range toRemove {
		destroy(ecs, e)
	}

	for _, intent := range s.Intents {
		if intent.Definition.Payload.Kind != abilities.PayloadProjectile {
			continue
		}
		for _, dir := range intent.Directions {
			factory.CreateProjectile(ecs, intent, intent.Definition.Payload.Projectile, dir)
		}
	}
}

// collideProjectile damages every overlapping target not yet hit, nearest
// first. It reports true once the pierce budget is spent.
func collideProjectile(w donburi.World, p *components.ProjectileData, obj *components.ObjectData) bool {
	targets := overlapping(w, obj.Object, opposingTag(p.OwnerFaction))
	if len(targets) == 0 {
		return false
	}

	pos := obj.Center()
	sort.SliceStable(targets, func(i, j int) bool {
		return gamemath.Distance(pos, centerOf(targets[i])) < gamemath.Distance(pos, centerOf(targets[j]))
	})

	for _, t := range targets {
		if _, hit := p.HitTargets[t.Entity()]; hit {
			continue
		}
		ResolveHit(w, t, Hit{
			Attacker: p.Owner,
			Faction:  p.OwnerFaction,
			Raw:      p.Damage,
			Type:     p.DamageType,
		})
		p.HitTargets[t.Entity()] = struct{}{}

		if p.Pierce > 0 {
			p.Pierce--
			continue
		}
		return true
	}
	return false
}
