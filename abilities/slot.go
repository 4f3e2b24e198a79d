package abilities

// Slot is the cooldown state of one equipped ability.
type Slot struct {
	Key      Key
	Occupied bool
	// Elapsed counts up from the last trigger.
	Elapsed float64
	// SpiralPhase rotates Spiral volleys between triggers.
	SpiralPhase float64
}

// NewSlot returns an occupied slot that is immediately ready. A key with no
// catalog entry yields an inert slot.
func NewSlot(c *Catalog, key Key) Slot {
	s := Slot{Key: key, Occupied: true}
	if def, ok := c.Lookup(key); ok {
		s.Elapsed = def.Cooldown
	}
	return s
}

// Advance moves the cooldown timer forward.
func (s *Slot) Advance(dt float64) {
	if s.Occupied {
		s.Elapsed += dt
	}
}

// IsReady reports whether the slot holds a defined ability whose cooldown,
// scaled by cooldownScale, has elapsed.
func (s *Slot) IsReady(c *Catalog, cooldownScale float64) bool {
	if !s.Occupied {
		return false
	}
	def, ok := c.Lookup(s.Key)
	if !ok {
		return false
	}
	return s.Elapsed >= def.Cooldown*cooldownScale
}

// Trigger restarts the cooldown. Callers check IsReady and targeting first.
func (s *Slot) Trigger() {
	s.Elapsed = 0
}

// Slots holds one Slot per body slot.
type Slots [SlotCount]Slot

// Rebuild returns slots for a new loadout. Slots whose key is unchanged keep
// their cooldown; everything else starts ready.
func Rebuild(prev Slots, l Loadout, c *Catalog) Slots {
	var next Slots
	for i := BodySlot(0); i < SlotCount; i++ {
		item, ok := l.Item(i)
		if !ok {
			continue
		}
		key := Key{Item: item, Slot: i}
		if prev[i].Occupied && prev[i].Key == key {
			next[i] = prev[i]
			continue
		}
		next[i] = NewSlot(c, key)
	}
	return next
}

// Loadout is the ordered set of up to three equipped items. The newest item
// is worn on the Head, older ones move down to Torso and then Legs.
type Loadout struct {
	items [SlotCount]ItemKind
	count int
}

// LoadoutOf builds a loadout from Head, Torso, Legs order.
func LoadoutOf(items ...ItemKind) Loadout {
	var l Loadout
	for i := len(items) - 1; i >= 0; i-- {
		l.Push(items[i])
	}
	return l
}

// Push equips item on the Head, shifting the others down. When all three
// slots were full the item that falls off the Legs is returned.
func (l *Loadout) Push(item ItemKind) (ItemKind, bool) {
	dropped, full := l.items[Legs], l.count == SlotCount
	l.items[Legs] = l.items[Torso]
	l.items[Torso] = l.items[Head]
	l.items[Head] = item
	if !full {
		l.count++
	}
	return dropped, full
}

// Item returns the item worn in slot.
func (l Loadout) Item(slot BodySlot) (ItemKind, bool) {
	if slot < 0 || int(slot) >= l.count {
		return 0, false
	}
	return l.items[slot], true
}

// Len is the number of equipped items.
func (l Loadout) Len() int {
	return l.count
}

// Keys returns the ability keys of the equipped items.
func (l Loadout) Keys() []Key {
	keys := make([]Key, 0, l.count)
	for i := BodySlot(0); int(i) < l.count; i++ {
		keys = append(keys, Key{Item: l.items[i], Slot: i})
	}
	return keys
}
