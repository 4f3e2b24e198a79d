// Package messages holds the outbound events the simulation publishes.
// Subscribers run when the session flushes the queues at the end of a tick;
// the simulation never waits on them.
package messages

import (
	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/combat"
	"github.com/automoto/fruitfight/combo"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	dmath "github.com/yohamta/donburi/features/math"
)

// HitLanded is published for every hit that applied damage.
type HitLanded struct {
	Attacker   donburi.Entity
	Target     donburi.Entity
	Damage     int
	DamageType combat.DamageType
	Position   dmath.Vec2
}

// Healed is published when a heal restores hit points.
type Healed struct {
	Source donburi.Entity
	Target donburi.Entity
	Amount int
}

// ActorDied is published once per actor when its health reaches zero.
type ActorDied struct {
	Actor    donburi.Entity
	Killer   donburi.Entity
	Position dmath.Vec2
	Hostile  bool
	Boss     bool
}

type ComboTierChanged struct {
	Old combo.Tier
	New combo.Tier
}

// ComboPayout is published when a combo ends. Peak is the tier of the run's
// highest combo so far.
type ComboPayout struct {
	Bonus int
	Peak  combo.Tier
}

// AbilityTriggered is published when a slot fires.
type AbilityTriggered struct {
	Caster   donburi.Entity
	Key      abilities.Key
	Name     string
	Position dmath.Vec2
}

var (
	HitLandedEvent        = events.NewEventType[HitLanded]()
	HealedEvent           = events.NewEventType[Healed]()
	ActorDiedEvent        = events.NewEventType[ActorDied]()
	ComboTierChangedEvent = events.NewEventType[ComboTierChanged]()
	ComboPayoutEvent      = events.NewEventType[ComboPayout]()
	AbilityTriggeredEvent = events.NewEventType[AbilityTriggered]()
)

// Flush delivers every queued event to its subscribers.
func Flush(w donburi.World) {
	AbilityTriggeredEvent.ProcessEvents(w)
	HitLandedEvent.ProcessEvents(w)
	HealedEvent.ProcessEvents(w)
	ActorDiedEvent.ProcessEvents(w)
	ComboTierChangedEvent.ProcessEvents(w)
	ComboPayoutEvent.ProcessEvents(w)
}
