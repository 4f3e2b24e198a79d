package systems

import (
	"github.com/automoto/fruitfight/combat"
	"github.com/automoto/fruitfight/components"
	cfg "github.com/automoto/fruitfight/config"
	"github.com/automoto/fruitfight/shared/messages"
	"github.com/automoto/fruitfight/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Hit is one damage application entering the pipeline.
type Hit struct {
	Attacker donburi.Entity
	// Faction of the attacker, kept separately so hits from projectiles
	// whose owner already died are still credited.
	Faction combat.Faction
	Raw     int
	Type    combat.DamageType
	// Contact hits respect and grant DamageImmunity; ranged and area hits
	// ignore it.
	Contact bool
	// Retaliation marks the return blow of a contact. It never feeds the
	// combo, so taking contact damage leaves the combo at zero.
	Retaliation bool
}

// ResolveHit runs hit against target and returns the damage the pipeline
// produced, or 0 when the hit was suppressed. Dead or missing targets are a
// no-op.
func ResolveHit(w donburi.World, target *donburi.Entry, hit Hit) int {
	if target == nil || !target.Valid() || !target.HasComponent(components.Health) {
		return 0
	}
	if target.HasComponent(components.Death) {
		return 0
	}

	// 1. Contact immunity
	if hit.Contact && target.HasComponent(components.DamageImmunity) {
		if components.DamageImmunity.Get(target).Remaining > 0 {
			return 0
		}
	}

	// 2-3. Armor and damage type
	dmg := combat.Mitigate(hit.Raw, armorOf(target), hit.Type, combat.Rules{
		MinimumDamage:   cfg.Combat.MinimumDamage,
		MagicMultiplier: cfg.Combat.MagicMultiplier,
	})

	// 4. Health
	hp := components.Health.Get(target)
	removed := hp.TakeDamage(dmg)

	// 5. Contact immunity window
	if hit.Contact {
		grantImmunity(target)
	}

	pos := centerOf(target)
	messages.HitLandedEvent.Publish(w, messages.HitLanded{
		Attacker:   hit.Attacker,
		Target:     target.Entity(),
		Damage:     dmg,
		DamageType: hit.Type,
		Position:   pos,
	})

	lifeSteal(w, hit.Attacker, removed)

	killed := hp.Dead()
	if killed {
		markDead(w, target, hit.Attacker, pos)
	}
	reportCombo(w, target, hit, killed)

	return dmg
}

// ApplyHeal restores amount hit points to target, clamped at its maximum.
func ApplyHeal(w donburi.World, source donburi.Entity, target *donburi.Entry, amount int) int {
	if target == nil || !target.Valid() || !target.HasComponent(components.Health) {
		return 0
	}
	if target.HasComponent(components.Death) {
		return 0
	}
	healed := components.Health.Get(target).Heal(amount)
	if healed > 0 {
		messages.HealedEvent.Publish(w, messages.Healed{
			Source: source,
			Target: target.Entity(),
			Amount: healed,
		})
	}
	return healed
}

func armorOf(e *donburi.Entry) int {
	armor := 0
	if e.HasComponent(components.Combatant) {
		armor = components.Combatant.Get(e).Armor
	}
	if e.HasComponent(components.Buffs) {
		armor += components.Buffs.Get(e).Totals().Armor
	}
	return armor
}

func grantImmunity(e *donburi.Entry) {
	if e.HasComponent(components.DamageImmunity) {
		components.DamageImmunity.Get(e).Remaining = cfg.Combat.ImmunityWindow
		return
	}
	donburi.Add(e, components.DamageImmunity, &components.DamageImmunityData{
		Remaining: cfg.Combat.ImmunityWindow,
	})
}

func lifeSteal(w donburi.World, attacker donburi.Entity, removed int) {
	if removed <= 0 || !w.Valid(attacker) {
		return
	}
	a := w.Entry(attacker)
	if !a.HasComponent(components.Buffs) {
		return
	}
	if heal := combat.Fraction(removed, components.Buffs.Get(a).Totals().Steal); heal > 0 {
		ApplyHeal(w, attacker, a, heal)
	}
}

// markDead attaches the Death marker. The marker is what keeps a second
// lethal hit in the same tick from reporting the death again.
func markDead(w donburi.World, e *donburi.Entry, killer donburi.Entity, pos dmath.Vec2) {
	if e.HasComponent(components.Death) {
		return
	}
	donburi.Add(e, components.Death, &components.DeathData{Killer: killer})

	var boss bool
	if e.HasComponent(components.Combatant) {
		boss = components.Combatant.Get(e).Boss
	}
	messages.ActorDiedEvent.Publish(w, messages.ActorDied{
		Actor:    e.Entity(),
		Killer:   killer,
		Position: pos,
		Hostile:  e.HasComponent(tags.Hostile),
		Boss:     boss,
	})
}

// reportCombo feeds the session's combo tracker. Friendly hits on hostiles
// build the combo; contact damage taken by the player resets it.
func reportCombo(w donburi.World, target *donburi.Entry, hit Hit, killed bool) {
	s := sessionData(w)
	if s == nil || s.Combo == nil || hit.Retaliation {
		return
	}

	if hit.Faction == combat.Friendly && factionOf(target) == combat.Hostile {
		switch {
		case killed && isBoss(target):
			s.Combo.OnSpecialKill()
		case killed:
			s.Combo.OnKill()
		default:
			s.Combo.OnHit()
		}
		return
	}

	if hit.Contact && target.HasComponent(tags.Player) {
		s.Combo.OnReset()
	}
}

func isBoss(e *donburi.Entry) bool {
	return e.HasComponent(components.Combatant) && components.Combatant.Get(e).Boss
}
