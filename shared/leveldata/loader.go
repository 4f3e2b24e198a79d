package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const defaultHostileKind = "goblin"

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "wg-tiles" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				arena.Obstacles = append(arena.Obstacles, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				arena.PlayerSpawns = append(arena.PlayerSpawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case "HostileSpawn":
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = defaultHostileKind
				}
				arena.HostileSpawns = append(arena.HostileSpawns, HostileSpawn{
					X:    o.X,
					Y:    o.Y,
					Kind: kind,
					Wave: o.Properties.GetInt("wave"),
				})
			}
		}
	}

	sort.Slice(arena.PlayerSpawns, func(i, j int) bool {
		return arena.PlayerSpawns[i].Index < arena.PlayerSpawns[j].Index
	})
	sort.SliceStable(arena.HostileSpawns, func(i, j int) bool {
		return arena.HostileSpawns[i].Wave < arena.HostileSpawns[j].Wave
	})

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		arenas[stem] = arena
		names = append(names, stem)
	}

	sort.Strings(names)
	return arenas, names, nil
}

// HostilesForWave returns the spawns active in wave: every spawn whose
// first wave is at or below it.
func (a *Arena) HostilesForWave(wave int) []HostileSpawn {
	var out []HostileSpawn
	for _, s := range a.HostileSpawns {
		if s.Wave <= wave {
			out = append(out, s)
		}
	}
	return out
}
