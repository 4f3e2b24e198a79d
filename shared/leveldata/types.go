// Package leveldata reads arena layouts from TMX maps.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

// Arena holds everything the host needs from a TMX map to stage a run.
type Arena struct {
	Width  int
	Height int

	// Obstacles are the solid tiles of the wg-tiles layer. Only the host
	// draws them; combat ignores them.
	Obstacles     []Rect
	PlayerSpawns  []SpawnPoint
	HostileSpawns []HostileSpawn
}

type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// HostileSpawn is a point hostiles of Kind enter from. Wave is the first
// wave that uses it.
type HostileSpawn struct {
	X, Y float64
	Kind string
	Wave int
}
