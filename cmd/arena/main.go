package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/automoto/fruitfight/abilities"
	cfg "github.com/automoto/fruitfight/config"
	"github.com/automoto/fruitfight/core"
	"github.com/automoto/fruitfight/leaderboard"
	"github.com/automoto/fruitfight/persistence"
	"github.com/automoto/fruitfight/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// run is one session plus the host state around it.
type run struct {
	session  *core.Session
	arena    *leveldata.Arena
	player   donburi.Entity
	director *director
	started  time.Time
}

func newRun(arena *leveldata.Arena) *run {
	catalog := abilities.Default()

	var s *core.Session
	spawn := dmath.NewVec2(float64(cfg.Arena.Width)/2, float64(cfg.Arena.Height)/2)
	if arena != nil {
		s = core.NewSessionSized(catalog, arena.Width, arena.Height)
		spawn = dmath.NewVec2(float64(arena.Width)/2, float64(arena.Height)/2)
		if len(arena.PlayerSpawns) > 0 {
			spawn = dmath.NewVec2(arena.PlayerSpawns[0].X, arena.PlayerSpawns[0].Y)
		}
	} else {
		s = core.NewSession(catalog)
	}

	player := s.SpawnPlayer(spawn)
	s.Equip(player, abilities.LoadoutOf(abilities.Strawberry))

	return &run{
		session:  s,
		arena:    arena,
		player:   player,
		director: newDirector(s, arena, player, time.Now().UnixNano()),
		started:  time.Now(),
	}
}

func (r *run) step(dt float64) {
	r.session.Tick(dt)
	r.director.update(dt)
}

// finish closes the session and hands the summary to the profile and the
// leaderboard. Failures there are logged and otherwise ignored.
func (r *run) finish(store *persistence.Store, board *leaderboard.Board) {
	summary := r.session.End()
	log.Printf("[arena] Run over after wave %d", r.director.wave)

	if store != nil {
		if p, err := store.RecordRun(r.session.RunID(), summary, time.Since(r.started).Seconds(), time.Now()); err == nil {
			log.Printf("[arena] Best combo %d, lifetime points %d", p.BestCombo, p.LifetimePoints)
		}
	}
	if board != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if rank, err := board.Submit(ctx, r.session.RunID(), summary.MaxCombo); err == nil && rank > 0 {
			log.Printf("[arena] Leaderboard rank %d", rank)
		}
	}
}

func main() {
	configPath := flag.String("config", "", "Config file (yaml, toml or json)")
	levelPath := flag.String("level", "", "TMX arena map")
	headless := flag.Bool("headless", false, "Run without a window")
	duration := flag.Duration("duration", time.Minute, "Headless run length")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.Load(*configPath); err != nil {
			log.Fatalf("[arena] Failed to load config: %v", err)
		}
	}
	if *levelPath == "" {
		*levelPath = cfg.Arena.LevelPath
	}

	var arena *leveldata.Arena
	if *levelPath != "" {
		a, err := leveldata.LoadArena(os.DirFS(filepath.Dir(*levelPath)), filepath.Base(*levelPath))
		if err != nil {
			log.Fatalf("[arena] Failed to load level: %v", err)
		}
		arena = a
	}

	// A missing profile store only means the run is not recorded.
	store, _ := persistence.Open("fruitfight")

	var board *leaderboard.Board
	if cfg.Leaderboard.Enabled {
		b, client, err := leaderboard.Dial(context.Background(), cfg.Leaderboard)
		if err != nil {
			log.Printf("[arena] Warning: Leaderboard disabled: %v", err)
		} else {
			board = b
			defer client.Close()
		}
	}

	r := newRun(arena)

	if *headless {
		runHeadless(r, *duration)
		r.finish(store, board)
		return
	}

	width, height := cfg.Arena.Width, cfg.Arena.Height
	if arena != nil {
		width, height = arena.Width, arena.Height
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Fruit Fight")
	ebiten.SetTPS(cfg.Arena.TickRate)

	if err := ebiten.RunGame(&Game{run: r, width: width, height: height}); err != nil {
		log.Printf("[arena] %v", err)
	}
	r.finish(store, board)
}

// runHeadless ticks the session at the configured rate until the duration
// passes, the player dies or the process is interrupted.
func runHeadless(r *run, d time.Duration) {
	tickRate := cfg.Arena.TickRate
	dt := 1 / float64(tickRate)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()
	deadline := time.After(d)

	log.Printf("[arena] Headless run started at %d ticks/second", tickRate)
	for {
		select {
		case <-sigChan:
			log.Println("[arena] Interrupted")
			return
		case <-deadline:
			return
		case <-ticker.C:
			r.step(dt)
			if !r.session.Alive(r.player) {
				return
			}
		}
	}
}
