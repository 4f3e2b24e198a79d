package core

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/combo"
	"github.com/automoto/fruitfight/components"
	cfg "github.com/automoto/fruitfight/config"
	"github.com/automoto/fruitfight/shared/messages"
	"github.com/automoto/fruitfight/systems"
	"github.com/automoto/fruitfight/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var ErrUnknownHostile = errors.New("unknown hostile kind")

// Session owns one run: the world, its collision space, the combo tracker
// and the systems that advance them.
type Session struct {
	ecs     *ecs.ECS
	catalog *abilities.Catalog
	tracker *combo.Tracker
	runID   uuid.UUID
}

// NewSession builds a fresh world for catalog sized to the configured arena.
func NewSession(catalog *abilities.Catalog) *Session {
	return NewSessionSized(catalog, cfg.Arena.Width, cfg.Arena.Height)
}

// NewSessionSized builds a fresh world for catalog with the given arena
// bounds and registers the systems in tick order. Bounds of zero leave
// projectiles unbounded.
func NewSessionSized(catalog *abilities.Catalog, width, height int) *Session {
	world := donburi.NewWorld()
	s := &Session{
		ecs:     ecs.NewECS(world),
		catalog: catalog,
		runID:   uuid.New(),
	}
	s.tracker = combo.NewTracker(cfg.Combo.DecayWindow, combo.Points{
		Hit:         cfg.Combo.HitPoints,
		Kill:        cfg.Combo.KillPoints,
		SpecialKill: cfg.Combo.SpecialKillPoints,
	}, comboEvents{world: world})

	spaceW, spaceH := width, height
	if spaceW <= 0 || spaceH <= 0 {
		spaceW, spaceH = cfg.Arena.Width, cfg.Arena.Height
	}
	factory.CreateSpace(s.ecs, spaceW, spaceH, cfg.Arena.CellSize, cfg.Arena.CellSize)
	factory.CreateSession(s.ecs, catalog, s.tracker, float64(width), float64(height))

	// Spawners queue intents; every later system sees this tick's spawns.
	s.ecs.AddSystem(systems.UpdateAbilities)
	s.ecs.AddSystem(systems.UpdateProjectiles)
	s.ecs.AddSystem(systems.UpdateAreaEffects)
	s.ecs.AddSystem(systems.UpdateBuffs)
	s.ecs.AddSystem(systems.UpdateSummons)
	s.ecs.AddSystem(systems.UpdateContactDamage)
	s.ecs.AddSystem(systems.UpdateHealth)
	s.ecs.AddSystem(systems.UpdateCombo)
	s.ecs.AddSystem(systems.UpdateDeaths)

	log.Printf("[session] run %s started with %d abilities", s.runID, catalog.Len())
	return s
}

// Tick advances the simulation by dt seconds and delivers the events raised
// along the way.
func (s *Session) Tick(dt float64) {
	data := s.data()
	data.Dt = dt
	data.Elapsed += dt
	data.Ticks++

	s.ecs.Update()
	messages.Flush(s.ecs.World)
}

// End closes the run and returns the values handed to persistence.
func (s *Session) End() combo.Summary {
	summary := s.tracker.Summary()
	messages.Flush(s.ecs.World)
	log.Printf("[session] run %s ended: max combo %d, %d points", s.runID, summary.MaxCombo, summary.TotalPoints)
	return summary
}

func (s *Session) World() donburi.World { return s.ecs.World }
func (s *Session) ECS() *ecs.ECS { return s.ecs }
func (s *Session) RunID() uuid.UUID { return s.runID }
func (s *Session) Catalog() *abilities.Catalog { return s.catalog }
func (s *Session) Combo() combo.Snapshot { return s.tracker.Snapshot() }

// SpawnPlayer adds the controlled actor centered on pos.
func (s *Session) SpawnPlayer(pos dmath.Vec2) donburi.Entity {
	return factory.CreatePlayer(s.ecs, pos).Entity()
}

// SpawnHostile adds a hostile of the configured kind centered on pos.
func (s *Session) SpawnHostile(kind string, pos dmath.Vec2) (donburi.Entity, error) {
	hostileType, ok := cfg.Hostile.Types[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHostile, kind)
	}
	return factory.CreateHostile(s.ecs, hostileType, pos).Entity(), nil
}

func (s *Session) data() *components.SessionData {
	entry := components.Session.MustFirst(s.ecs.World)
	return components.Session.Get(entry)
}

// entry resolves a handle, reporting false once the actor is gone.
func (s *Session) entry(actor donburi.Entity) (*donburi.Entry, bool) {
	if !s.ecs.World.Valid(actor) {
		return nil, false
	}
	return s.ecs.World.Entry(actor), true
}

// comboEvents forwards tracker callbacks onto the outbound event queue.
type comboEvents struct {
	world donburi.World
}

func (c comboEvents) TierChanged(old, new combo.Tier) {
	messages.ComboTierChangedEvent.Publish(c.world, messages.ComboTierChanged{Old: old, New: new})
}

func (c comboEvents) Payout(bonus int, tier combo.Tier) {
	messages.ComboPayoutEvent.Publish(c.world, messages.ComboPayout{Bonus: bonus, Peak: tier})
}
