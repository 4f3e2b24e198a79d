package main

import (
	"math/rand"

	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/components"
	cfg "github.com/automoto/fruitfight/config"
	"github.com/automoto/fruitfight/core"
	"github.com/automoto/fruitfight/shared/gamemath"
	"github.com/automoto/fruitfight/shared/leveldata"
	"github.com/automoto/fruitfight/shared/messages"
	"github.com/automoto/fruitfight/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	waveKinds = []string{"goblin", "skeleton", "orc", "necromancer", "dark_knight"}
	bossKinds = []string{"goblin_king", "lich_lord", "dragon_knight"}
)

const (
	bossEvery    = 5
	killsPerDrop = 3
	waveBreak    = 2.0
)

// director runs the waves: it spawns hostiles when the arena is clear,
// walks them toward the player and hands out items on kills.
type director struct {
	session *core.Session
	arena   *leveldata.Arena
	player  donburi.Entity
	rng     *rand.Rand

	wave  int
	pause float64
	kills int
}

func newDirector(s *core.Session, arena *leveldata.Arena, player donburi.Entity, seed int64) *director {
	d := &director{
		session: s,
		arena:   arena,
		player:  player,
		rng:     rand.New(rand.NewSource(seed)),
	}
	messages.ActorDiedEvent.Subscribe(s.World(), d.onActorDied)
	return d
}

func (d *director) update(dt float64) {
	if !d.session.Alive(d.player) {
		return
	}

	if d.hostileCount() == 0 {
		d.pause -= dt
		if d.pause <= 0 {
			d.wave++
			d.spawnWave()
			d.pause = waveBreak
		}
	}
	d.chase(dt)
}

func (d *director) onActorDied(w donburi.World, ev messages.ActorDied) {
	if !ev.Hostile {
		return
	}
	d.kills++
	if d.kills%killsPerDrop != 0 && !ev.Boss {
		return
	}
	item := abilities.ItemKind(d.rng.Intn(int(abilities.ItemKindCount)))
	d.session.EquipItem(d.player, item)
}

func (d *director) hostileCount() int {
	n := 0
	tags.Hostile.Each(d.session.World(), func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			n++
		}
	})
	return n
}

// spawnWave places wave+2 hostiles, plus a boss every fifth wave.
func (d *director) spawnWave() {
	points := d.spawnPoints()
	for i := 0; i < d.wave+2; i++ {
		p := points[i%len(points)]
		kind := p.Kind
		if kind == "" {
			kind = waveKinds[d.rng.Intn(min(len(waveKinds), 1+d.wave/2))]
		}
		d.session.SpawnHostile(kind, dmath.NewVec2(p.X, p.Y))
	}
	if d.wave%bossEvery == 0 {
		boss := bossKinds[(d.wave/bossEvery-1)%len(bossKinds)]
		p := points[d.rng.Intn(len(points))]
		d.session.SpawnHostile(boss, dmath.NewVec2(p.X, p.Y))
	}
}

// spawnPoints uses the map's hostile spawns for the current wave, falling
// back to the arena corners.
func (d *director) spawnPoints() []leveldata.HostileSpawn {
	if d.arena != nil {
		if points := d.arena.HostilesForWave(d.wave); len(points) > 0 {
			return points
		}
	}
	w, h := float64(cfg.Arena.Width), float64(cfg.Arena.Height)
	if d.arena != nil {
		w, h = float64(d.arena.Width), float64(d.arena.Height)
	}
	const inset = 48
	return []leveldata.HostileSpawn{
		{X: inset, Y: inset},
		{X: w - inset, Y: inset},
		{X: inset, Y: h - inset},
		{X: w - inset, Y: h - inset},
	}
}

// chase moves every live hostile straight at the player.
func (d *director) chase(dt float64) {
	target, ok := d.session.Position(d.player)
	if !ok {
		return
	}

	type step struct {
		entity donburi.Entity
		to     dmath.Vec2
	}
	var steps []step
	tags.Hostile.Each(d.session.World(), func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		obj := components.Object.Get(e)
		pos := obj.Center()
		dir := gamemath.Direction(pos, target, dmath.Vec2{})
		speed := components.Combatant.Get(e).Speed
		steps = append(steps, step{e.Entity(), gamemath.Translate(pos, gamemath.Scale(dir, speed), dt)})
	})
	for _, s := range steps {
		d.session.Move(s.entity, s.to)
	}
}
