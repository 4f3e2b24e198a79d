package abilities

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDefinition is returned when static ability data cannot be used.
var ErrInvalidDefinition = errors.New("invalid ability definition")

// Entry pairs a key with its definition for catalog construction.
type Entry struct {
	Key        Key
	Definition Definition
}

type slotEntry struct {
	def Definition
	ok  bool
}

// Catalog is an immutable table of ability definitions indexed by item kind
// and body slot. It is safe to share between sessions.
type Catalog struct {
	table [ItemKindCount][SlotCount]slotEntry
	size  int
}

// NewCatalog validates every entry and builds the table.
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{}
	for _, e := range entries {
		if !e.Key.Valid() {
			return nil, fmt.Errorf("%w: key %s out of range", ErrInvalidDefinition, e.Key)
		}
		if c.table[e.Key.Item][e.Key.Slot].ok {
			return nil, fmt.Errorf("%w: duplicate key %s", ErrInvalidDefinition, e.Key)
		}
		if err := validate(e.Definition); err != nil {
			return nil, fmt.Errorf("%w: %s (%q): %v", ErrInvalidDefinition, e.Key, e.Definition.Name, err)
		}
		c.table[e.Key.Item][e.Key.Slot] = slotEntry{def: e.Definition, ok: true}
		c.size++
	}
	return c, nil
}

// MustCatalog is NewCatalog for static tables; it panics on bad data.
func MustCatalog(entries []Entry) *Catalog {
	c, err := NewCatalog(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the definition for key. Unknown or out-of-range keys report
// false.
func (c *Catalog) Lookup(key Key) (Definition, bool) {
	if c == nil || !key.Valid() {
		return Definition{}, false
	}
	e := c.table[key.Item][key.Slot]
	return e.def, e.ok
}

// Len is the number of defined abilities.
func (c *Catalog) Len() int {
	return c.size
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func validate(d Definition) error {
	if !positive(d.Cooldown) {
		return fmt.Errorf("cooldown %v must be positive", d.Cooldown)
	}

	switch p := d.Payload; p.Kind {
	case PayloadProjectile:
		s := p.Projectile
		if !positive(s.Speed) {
			return fmt.Errorf("projectile speed %v must be positive", s.Speed)
		}
		if s.Pierce < 0 {
			return fmt.Errorf("pierce %d must not be negative", s.Pierce)
		}
		if s.Damage < 0 {
			return fmt.Errorf("projectile damage %d must not be negative", s.Damage)
		}
		if s.Count < 0 || s.Homing < 0 {
			return fmt.Errorf("projectile count and homing must not be negative")
		}
		if s.Targeting < Nearest || s.Targeting > Spiral {
			return fmt.Errorf("unknown targeting %d", s.Targeting)
		}
	case PayloadArea:
		s := p.Area
		if !positive(s.Radius) {
			return fmt.Errorf("radius %v must be positive", s.Radius)
		}
		if !positive(s.TickInterval) {
			return fmt.Errorf("tick interval %v must be positive", s.TickInterval)
		}
		if !positive(s.Duration) {
			return fmt.Errorf("duration %v must be positive", s.Duration)
		}
	case PayloadBuff:
		if !positive(p.Buff.Duration) {
			return fmt.Errorf("buff duration %v must be positive", p.Buff.Duration)
		}
	case PayloadSummon:
		if !positive(p.Summon.Duration) {
			return fmt.Errorf("summon duration %v must be positive", p.Summon.Duration)
		}
		if p.Summon.Count <= 0 {
			return fmt.Errorf("summon count %d must be positive", p.Summon.Count)
		}
	default:
		return fmt.Errorf("unknown payload kind %d", p.Kind)
	}
	return nil
}
