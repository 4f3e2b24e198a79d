package combat

// Faction decides who an actor may damage. Damage lands on the opposing
// faction; heals land on the caster's own.
type Faction int

const (
	Friendly Faction = iota
	Hostile
)

// Opposes reports whether damage from f may land on other.
func (f Faction) Opposes(other Faction) bool {
	return f != other
}

func (f Faction) String() string {
	if f == Hostile {
		return "hostile"
	}
	return "friendly"
}
