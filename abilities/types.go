// Package abilities defines the ability catalog, the payloads abilities
// carry, and the per-actor slot state that decides when they fire.
package abilities

import (
	"fmt"

	"github.com/automoto/fruitfight/combat"
)

// ItemKind is the equipped item that grants an ability.
type ItemKind int

const (
	Strawberry ItemKind = iota
	Pear
	Mango
	Pineapple
	Apple
	Carrot
	Coconut

	ItemKindCount = 7
)

var itemNames = [ItemKindCount]string{"Strawberry", "Pear", "Mango", "Pineapple", "Apple", "Carrot", "Coconut"}

func (k ItemKind) String() string {
	if k < 0 || k >= ItemKindCount {
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
	return itemNames[k]
}

// BodySlot is where an item is worn.
type BodySlot int

const (
	Head BodySlot = iota
	Torso
	Legs

	SlotCount = 3
)

var slotNames = [SlotCount]string{"Head", "Torso", "Legs"}

func (s BodySlot) String() string {
	if s < 0 || s >= SlotCount {
		return fmt.Sprintf("BodySlot(%d)", int(s))
	}
	return slotNames[s]
}

// Key identifies an ability by the item that grants it and the slot it is
// worn in.
type Key struct {
	Item ItemKind
	Slot BodySlot
}

func (k Key) Valid() bool {
	return k.Item >= 0 && k.Item < ItemKindCount && k.Slot >= 0 && k.Slot < SlotCount
}

func (k Key) String() string {
	return k.Item.String() + "/" + k.Slot.String()
}

// Targeting decides where a projectile ability aims.
type Targeting int

const (
	Nearest Targeting = iota
	AllDirections
	Forward
	Spiral
)

func (t Targeting) String() string {
	switch t {
	case Nearest:
		return "nearest"
	case AllDirections:
		return "all_directions"
	case Forward:
		return "forward"
	case Spiral:
		return "spiral"
	}
	return "unknown"
}

// Visual is the presentation tag of a projectile.
type Visual int

const (
	VisualStrawberry Visual = iota
	VisualPear
	VisualMango
	VisualPineapple
	VisualApple
	VisualCarrot
	VisualCoconut
	VisualEnergy
)

// AreaKind is the presentation tag of an area effect.
type AreaKind int

const (
	Explosion AreaKind = iota
	PoisonCloud
	HealingAura
	SlowField
	BurnGround
)

// SummonKind selects summon behaviour. Turrets stay put and shoot, the
// others orbit their owner.
type SummonKind int

const (
	Turret SummonKind = iota
	Orb
	Shield
	Minion
)

func (k SummonKind) String() string {
	switch k {
	case Turret:
		return "turret"
	case Orb:
		return "orb"
	case Shield:
		return "shield"
	case Minion:
		return "minion"
	}
	return "unknown"
}

// PayloadKind tags which variant a Payload holds.
type PayloadKind int

const (
	PayloadProjectile PayloadKind = iota
	PayloadArea
	PayloadBuff
	PayloadSummon
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadProjectile:
		return "projectile"
	case PayloadArea:
		return "area"
	case PayloadBuff:
		return "buff"
	case PayloadSummon:
		return "summon"
	}
	return "unknown"
}

// ProjectileSpec fires one projectile per resolved direction. Count
// overrides the direction count for AllDirections and Spiral, zero keeps the
// configured default. Homing is a turn rate in radians per second.
type ProjectileSpec struct {
	Damage     int
	Speed      float64
	Pierce     int
	Targeting  Targeting
	Visual     Visual
	DamageType combat.DamageType
	Count      int
	Homing     float64
}

// AreaSpec is a radius zone. A negative DamagePerTick heals friendlies.
type AreaSpec struct {
	DamagePerTick int
	Radius        float64
	TickInterval  float64
	Duration      float64
	Effect        AreaKind
	DamageType    combat.DamageType
}

// BuffSpec applies Modifier to the caster for Duration seconds.
type BuffSpec struct {
	Modifier combat.StatModifier
	Duration float64
}

// SummonSpec spawns Count summons that live for Duration seconds.
type SummonSpec struct {
	Kind     SummonKind
	Duration float64
	Count    int
}

// Payload is a closed variant; only the field matching Kind is meaningful.
type Payload struct {
	Kind       PayloadKind
	Projectile ProjectileSpec
	Area       AreaSpec
	Buff       BuffSpec
	Summon     SummonSpec
}

func Projectile(p ProjectileSpec) Payload { return Payload{Kind: PayloadProjectile, Projectile: p} }
func Area(a AreaSpec) Payload { return Payload{Kind: PayloadArea, Area: a} }
func Buff(b BuffSpec) Payload { return Payload{Kind: PayloadBuff, Buff: b} }
func Summon(s SummonSpec) Payload { return Payload{Kind: PayloadSummon, Summon: s} }

// Definition is one catalog entry.
type Definition struct {
	Name     string
	Cooldown float64
	Payload  Payload
}
