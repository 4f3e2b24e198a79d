package systems

import (
	"github.com/automoto/fruitfight/combat"
	"github.com/automoto/fruitfight/components"
	"github.com/automoto/fruitfight/shared/gamemath"
	"github.com/automoto/fruitfight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func sessionData(w donburi.World) *components.SessionData {
	entry, ok := components.Session.First(w)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

func factionOf(e *donburi.Entry) combat.Faction {
	if e.HasComponent(components.Combatant) {
		return components.Combatant.Get(e).Faction
	}
	if e.HasComponent(tags.Hostile) {
		return combat.Hostile
	}
	return combat.Friendly
}

func centerOf(e *donburi.Entry) dmath.Vec2 {
	if e.HasComponent(components.Object) {
		return components.Object.Get(e).Center()
	}
	return dmath.Vec2{}
}

func rectOf(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// alive reports whether e is an actor that can still take part in combat.
func alive(e *donburi.Entry) bool {
	return e.Valid() && e.HasComponent(components.Health) && !e.HasComponent(components.Death)
}

// opposingTag is the collision tag of the actors faction f may damage.
func opposingTag(f combat.Faction) string {
	if f == combat.Hostile {
		return tags.ResolvFriendly
	}
	return tags.ResolvHostile
}

// actor is a snapshot of a live combatant taken before any system mutates
// the world.
type actor struct {
	entry   *donburi.Entry
	pos     dmath.Vec2
	faction combat.Faction
}

// liveActors lists every living combatant in iteration order.
func liveActors(w donburi.World) []actor {
	var out []actor
	components.Combatant.Each(w, func(e *donburi.Entry) {
		if !alive(e) {
			return
		}
		out = append(out, actor{
			entry:   e,
			pos:     centerOf(e),
			faction: components.Combatant.Get(e).Faction,
		})
	})
	return out
}

// nearestOpposing finds the closest live actor that faction f may damage.
// Ties go to the actor found first.
func nearestOpposing(actors []actor, from dmath.Vec2, f combat.Faction, maxRange float64) (actor, bool) {
	var candidates []actor
	var positions []dmath.Vec2
	for _, a := range actors {
		if f.Opposes(a.faction) {
			candidates = append(candidates, a)
			positions = append(positions, a.pos)
		}
	}
	i, ok := gamemath.Nearest(from, positions, maxRange)
	if !ok {
		return actor{}, false
	}
	return candidates[i], true
}

// overlapping returns the live entries carrying tag whose boxes overlap obj.
// resolv narrows the search to neighbouring cells; the box test decides.
func overlapping(w donburi.World, obj *resolv.Object, tag string) []*donburi.Entry {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	box := rectOf(obj)
	var out []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		entity, ok := o.Data.(donburi.Entity)
		if !ok || !w.Valid(entity) {
			continue
		}
		e := w.Entry(entity)
		if !alive(e) || !box.Overlaps(rectOf(o)) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// destroy removes e and its collision object.
func destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			obj := components.Object.Get(e)
			if obj != nil && obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	ecs.World.Remove(e.Entity())
}
