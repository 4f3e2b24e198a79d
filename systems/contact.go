package systems

import (
	"github.com/automoto/fruitfight/combat"
	"github.com/automoto/fruitfight/components"
	cfg "github.com/automoto/fruitfight/config"
	"github.com/automoto/fruitfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContactDamage counts down immunity windows and then resolves body
// contact between hostile and friendly actors.
func UpdateContactDamage(ecs *ecs.ECS) {
	s := sessionData(ecs.World)
	if s == nil {
		return
	}

	updateImmunity(ecs.World, s.Dt)

	type contact struct {
		hostile, friendly *donburi.Entry
	}
	var contacts []contact
	tags.Hostile.Each(ecs.World, func(e *donburi.Entry) {
		if !alive(e) || !e.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(e)
		for _, f := range overlapping(ecs.World, obj.Object, tags.ResolvFriendly) {
			contacts = append(contacts, contact{hostile: e, friendly: f})
		}
	})

	for _, c := range contacts {
		ResolveHit(ecs.World, c.friendly, Hit{
			Attacker: c.hostile.Entity(),
			Faction:  combat.Hostile,
			Raw:      contactDamage(c.hostile),
			Type:     combat.Physical,
			Contact:  true,
		})
		if !cfg.Combat.ContactRetaliation || !alive(c.friendly) {
			continue
		}
		ResolveHit(ecs.World, c.hostile, Hit{
			Attacker:    c.friendly.Entity(),
			Faction:     combat.Friendly,
			Raw:         contactDamage(c.friendly),
			Type:        combat.Physical,
			Contact:     true,
			Retaliation: true,
		})
	}
}

func contactDamage(e *donburi.Entry) int {
	if !e.HasComponent(components.Combatant) {
		return 0
	}
	_, bonus := casterScaling(e)
	return combat.Scale(components.Combatant.Get(e).Damage, bonus)
}

func updateImmunity(w donburi.World, dt float64) {
	var expired []*donburi.Entry
	components.DamageImmunity.Each(w, func(e *donburi.Entry) {
		im := components.DamageImmunity.Get(e)
		im.Remaining -= dt
		if im.Remaining <= 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		donburi.Remove[components.DamageImmunityData](e, components.DamageImmunity)
	}
}
