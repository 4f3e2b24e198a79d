package core

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/fruitfight/abilities"
	"github.com/automoto/fruitfight/combat"
	"github.com/automoto/fruitfight/combo"
	"github.com/automoto/fruitfight/components"
	cfg "github.com/automoto/fruitfight/config"
	"github.com/automoto/fruitfight/shared/gamemath"
	"github.com/automoto/fruitfight/shared/messages"
	"github.com/automoto/fruitfight/systems"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

const dt = 1.0 / 60.0

func newSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(abilities.Default())
}

func run(s *Session, ticks int) {
	for i := 0; i < ticks; i++ {
		s.Tick(dt)
	}
}

func count[T any](w donburi.World, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func mustHostile(t *testing.T, s *Session, kind string, x, y float64) donburi.Entity {
	t.Helper()
	e, err := s.SpawnHostile(kind, dmath.NewVec2(x, y))
	if err != nil {
		t.Fatalf("SpawnHostile(%q): %v", kind, err)
	}
	return e
}

func health(t *testing.T, s *Session, e donburi.Entity) int {
	t.Helper()
	cur, _, ok := s.Health(e)
	if !ok {
		t.Fatalf("Expected actor %v to exist", e)
	}
	return cur
}

func TestProjectileHitsNearestHostile(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	s.Equip(player, abilities.LoadoutOf(abilities.Mango))
	skeleton := mustHostile(t, s, "skeleton", 150, 100)

	var hits []messages.HitLanded
	messages.HitLandedEvent.Subscribe(s.World(), func(w donburi.World, ev messages.HitLanded) {
		hits = append(hits, ev)
	})

	run(s, 60)

	// Mango Bomb: 30 fire damage against 2 armor.
	if got := health(t, s, skeleton); got != 50-28 {
		t.Errorf("Expected skeleton health %d, got %d", 50-28, got)
	}
	if got := count(s.World(), components.Projectile); got != 0 {
		t.Errorf("Expected projectile to despawn after its only hit, got %d alive", got)
	}
	if len(hits) != 1 {
		t.Fatalf("Expected 1 HitLanded, got %d", len(hits))
	}
	if hits[0].Attacker != player || hits[0].Target != skeleton || hits[0].DamageType != combat.Fire {
		t.Errorf("Unexpected HitLanded %+v", hits[0])
	}
	if got := s.Combo().Current; got != 1 {
		t.Errorf("Expected combo 1, got %d", got)
	}
}

func TestNearestTargetSelection(t *testing.T) {
	tests := []struct {
		name       string
		near, far  dmath.Vec2
		wantNearHP int
		wantFarHP  int
	}{
		{"closer below", dmath.NewVec2(100, 140), dmath.NewVec2(160, 100), 22, 50},
		{"tie goes to first spawned", dmath.NewVec2(100, 150), dmath.NewVec2(100, 50), 22, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for attempt := 0; attempt < 2; attempt++ {
				s := newSession(t)
				player := s.SpawnPlayer(dmath.NewVec2(100, 100))
				s.Equip(player, abilities.LoadoutOf(abilities.Mango))
				near := mustHostile(t, s, "skeleton", tt.near.X, tt.near.Y)
				far := mustHostile(t, s, "skeleton", tt.far.X, tt.far.Y)

				run(s, 60)

				if got := health(t, s, near); got != tt.wantNearHP {
					t.Errorf("Expected first target health %d, got %d", tt.wantNearHP, got)
				}
				if got := health(t, s, far); got != tt.wantFarHP {
					t.Errorf("Expected second target health %d, got %d", tt.wantFarHP, got)
				}
			}
		})
	}
}

func TestContactImmunitySuppressesSecondContact(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	mustHostile(t, s, "orc", 100, 100)
	mustHostile(t, s, "orc", 105, 100)

	// Orc contact: 12 against 5 armor.
	run(s, 1)
	if got := health(t, s, player); got != 93 {
		t.Errorf("Expected one contact hit (93), got %d", got)
	}

	run(s, 28)
	if got := health(t, s, player); got != 93 {
		t.Errorf("Expected immunity to hold through the window (93), got %d", got)
	}

	run(s, 11)
	if got := health(t, s, player); got != 86 {
		t.Errorf("Expected exactly one more hit after the window (86), got %d", got)
	}
}

func TestContactRetaliation(t *testing.T) {
	s := newSession(t)
	s.SpawnPlayer(dmath.NewVec2(100, 100))
	orc := mustHostile(t, s, "orc", 100, 100)

	run(s, 1)

	// Player contact: 10 against 5 armor.
	if got := health(t, s, orc); got != 75 {
		t.Errorf("Expected orc health 75, got %d", got)
	}
}

func TestContactDamageLeavesComboAtZero(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	goblin := mustHostile(t, s, "goblin", 100, 100)

	var payouts []messages.ComboPayout
	messages.ComboPayoutEvent.Subscribe(s.World(), func(w donburi.World, ev messages.ComboPayout) {
		payouts = append(payouts, ev)
	})

	run(s, 1)

	if got := health(t, s, player); got == 100 {
		t.Fatalf("Expected the player to take contact damage")
	}
	if _, hpMax, _ := s.Health(goblin); health(t, s, goblin) == hpMax {
		t.Fatalf("Expected the goblin to take retaliation damage")
	}
	if got := s.Combo().Current; got != 0 {
		t.Errorf("Expected combo 0 after taking contact damage, got %d", got)
	}
	if got := s.Combo().Max; got != 0 {
		t.Errorf("Expected max combo 0, got %d", got)
	}
	if len(payouts) != 0 {
		t.Errorf("Expected no payout for an empty combo, got %v", payouts)
	}
}

func TestNewProjectileCollidesNextTick(t *testing.T) {
	cfg.Combat.ContactRetaliation = false
	t.Cleanup(func() { cfg.Combat.ContactRetaliation = true })

	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	s.Equip(player, abilities.LoadoutOf(abilities.Carrot))
	mustHostile(t, s, "dark_knight", 100, 100)

	var fromPlayer int
	messages.HitLandedEvent.Subscribe(s.World(), func(w donburi.World, ev messages.HitLanded) {
		if ev.Attacker == player {
			fromPlayer++
		}
	})

	run(s, 1)
	if fromPlayer != 0 {
		t.Errorf("Expected no projectile hit on the spawn tick, got %d", fromPlayer)
	}
	run(s, 1)
	if fromPlayer != 1 {
		t.Errorf("Expected the projectile to hit on the next tick, got %d", fromPlayer)
	}
}

func TestPierceNeverDoubleHits(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	s.Equip(player, abilities.LoadoutOf(abilities.Carrot))
	for i := 0; i < 8; i++ {
		mustHostile(t, s, "skeleton", 150+40*float64(i), 100)
	}

	hitCount := map[donburi.Entity]int{}
	messages.HitLandedEvent.Subscribe(s.World(), func(w donburi.World, ev messages.HitLanded) {
		if ev.Attacker == player {
			hitCount[ev.Target]++
		}
	})

	// Less than one Carrot Lance cooldown.
	run(s, 80)

	// Pierce 5 allows the first hit plus five more.
	if len(hitCount) != 6 {
		t.Errorf("Expected 6 targets hit, got %d", len(hitCount))
	}
	for target, n := range hitCount {
		if n != 1 {
			t.Errorf("Expected target %v to be hit once, got %d", target, n)
		}
	}
}

func TestHealingAreaNeverLowersHealth(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	components.Health.Get(s.World().Entry(player)).Current = 50
	s.Equip(player, abilities.LoadoutOf(abilities.Carrot, abilities.Pear))

	last := 50
	for i := 0; i < 120; i++ {
		s.Tick(dt)
		got := health(t, s, player)
		if got < last {
			t.Fatalf("Health dropped from %d to %d on tick %d", last, got, i)
		}
		last = got
	}
	// Healing Pulse every 5s heals 10; regen adds 1 per second.
	if last < 60 {
		t.Errorf("Expected at least 60 health after the pulse, got %d", last)
	}
}

func TestDamageAreaNeverRaisesHealth(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	s.Equip(player, abilities.LoadoutOf(abilities.Carrot, abilities.Mango))
	skeleton := mustHostile(t, s, "skeleton", 100, 180)

	last := 50
	for i := 0; i < 60; i++ {
		s.Tick(dt)
		got := health(t, s, skeleton)
		if got > last {
			t.Fatalf("Health rose from %d to %d on tick %d", last, got, i)
		}
		last = got
	}
	// One Burning Aura pulse: 8 fire against 2 armor.
	if last != 44 {
		t.Errorf("Expected skeleton health 44, got %d", last)
	}
}

func TestDeathReportedOnce(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	goblin := mustHostile(t, s, "goblin", 400, 400)

	var deaths []messages.ActorDied
	messages.ActorDiedEvent.Subscribe(s.World(), func(w donburi.World, ev messages.ActorDied) {
		deaths = append(deaths, ev)
	})

	e := s.World().Entry(goblin)
	hit := systems.Hit{Attacker: player, Faction: combat.Friendly, Raw: 100, Type: combat.True}
	systems.ResolveHit(s.World(), e, hit)
	systems.ResolveHit(s.World(), e, hit)
	run(s, 1)

	if len(deaths) != 1 {
		t.Fatalf("Expected 1 ActorDied, got %d", len(deaths))
	}
	if deaths[0].Killer != player || !deaths[0].Hostile {
		t.Errorf("Unexpected ActorDied %+v", deaths[0])
	}
	if s.Alive(goblin) {
		t.Errorf("Expected the goblin to be removed")
	}
	if got := s.Combo().Current; got != 2 {
		t.Errorf("Expected one kill worth 2 combo, got %d", got)
	}
}

func TestBossKillIsSpecial(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	boss := mustHostile(t, s, "goblin_king", 600, 400)

	systems.ResolveHit(s.World(), s.World().Entry(boss), systems.Hit{
		Attacker: player,
		Faction:  combat.Friendly,
		Raw:      1000,
		Type:     combat.True,
	})

	if got := s.Combo().Current; got != 5 {
		t.Errorf("Expected special kill worth 5 combo, got %d", got)
	}
}

func TestNoTargetKeepsCooldown(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	s.Equip(player, abilities.LoadoutOf(abilities.Mango))

	var triggered int
	messages.AbilityTriggeredEvent.Subscribe(s.World(), func(w donburi.World, ev messages.AbilityTriggered) {
		triggered++
	})

	run(s, 30)
	if triggered != 0 {
		t.Fatalf("Expected no trigger without hostiles, got %d", triggered)
	}

	mustHostile(t, s, "goblin", 300, 100)
	run(s, 1)
	if triggered != 1 {
		t.Errorf("Expected the ability to fire on the first tick with a target, got %d", triggered)
	}
}

func TestOutOfRangeHostileIsNotTargeted(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(50, 50))
	s.Equip(player, abilities.LoadoutOf(abilities.Mango))
	mustHostile(t, s, "goblin", 50+cfg.Targeting.MaxRange+100, 50)

	var triggered int
	messages.AbilityTriggeredEvent.Subscribe(s.World(), func(w donburi.World, ev messages.AbilityTriggered) {
		triggered++
	})

	run(s, 10)
	if triggered != 0 {
		t.Errorf("Expected no trigger for a target out of range, got %d", triggered)
	}
}

func TestBuffAppliesToCaster(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	s.Equip(player, abilities.LoadoutOf(abilities.Carrot, abilities.Coconut))

	run(s, 1)

	e := s.World().Entry(player)
	if !e.HasComponent(components.Buffs) {
		t.Fatalf("Expected Hard Shell to add buffs")
	}
	if got := components.Buffs.Get(e).Totals().Armor; got != 20 {
		t.Errorf("Expected +20 armor, got %d", got)
	}

	// Hard Shell lasts 6s and recharges in 12s.
	run(s, 7*60)
	if got := components.Buffs.Get(e).Totals().Armor; got != 0 {
		t.Errorf("Expected the buff to expire, got %d armor", got)
	}
}

func TestSpeedMultiplier(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	if got := s.SpeedMultiplier(player); got != 1 {
		t.Errorf("Expected 1 without buffs, got %v", got)
	}

	e := s.World().Entry(player)
	donburi.Add(e, components.Buffs, &components.BuffsData{})
	components.Buffs.Get(e).Apply(abilities.Key{}, combat.StatModifier{Kind: combat.SpeedBoost, Factor: 0.5}, 2)
	if got := s.SpeedMultiplier(player); got != 1.5 {
		t.Errorf("Expected 1.5 with a speed buff, got %v", got)
	}
}

func TestSummonsDieWithOwner(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	s.Equip(player, abilities.LoadoutOf(abilities.Carrot, abilities.Pineapple))

	run(s, 1)
	if got := count(s.World(), components.Summon); got != 3 {
		t.Fatalf("Expected 3 Spike Shield summons, got %d", got)
	}

	systems.ResolveHit(s.World(), s.World().Entry(player), systems.Hit{
		Faction: combat.Hostile,
		Raw:     1000,
		Type:    combat.True,
	})
	run(s, 1)

	if got := count(s.World(), components.Summon); got != 0 {
		t.Errorf("Expected summons to vanish with their owner, got %d", got)
	}
}

func TestOrbitingSummonDamagesHostile(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	s.Equip(player, abilities.LoadoutOf(abilities.Carrot, abilities.Pineapple))
	orc := mustHostile(t, s, "orc", 100+cfg.Summon.OrbitRadius, 100)

	run(s, 2*60)

	if got := health(t, s, orc); got >= 80 {
		t.Errorf("Expected shields to wear the orc down, got %d", got)
	}
}

func TestRegeneration(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	components.Health.Get(s.World().Entry(player)).Current = 50

	run(s, 30)
	if got := health(t, s, player); got != 50 {
		t.Errorf("Expected no regen before the first interval, got %d", got)
	}
	run(s, 60)
	if got := health(t, s, player); got != 51 {
		t.Errorf("Expected one regen tick, got %d", got)
	}
}

func TestDeadActorsDoNotRegenerate(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	systems.ResolveHit(s.World(), s.World().Entry(player), systems.Hit{
		Faction: combat.Hostile,
		Raw:     1000,
		Type:    combat.True,
	})

	run(s, 3*60)
	if got := health(t, s, player); got != 0 {
		t.Errorf("Expected a dead player to stay at 0, got %d", got)
	}
	if s.Alive(player) {
		t.Errorf("Expected the player to be dead")
	}
}

func TestStaleHandlesAreTolerated(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	s.Equip(player, abilities.LoadoutOf(abilities.Mango))
	goblin := mustHostile(t, s, "goblin", 150, 100)

	// Let the bomb leave, then remove its owner mid-flight.
	run(s, 2)
	s.World().Remove(player)
	run(s, 60)

	if s.Alive(player) || s.Equip(player, abilities.LoadoutOf(abilities.Pear)) || s.Move(player, dmath.Vec2{}) {
		t.Errorf("Expected calls on a removed actor to report false")
	}
	if _, _, ok := s.Health(player); ok {
		t.Errorf("Expected no health for a removed actor")
	}
	// The orphaned bomb still lands.
	if s.Alive(goblin) {
		t.Errorf("Expected the goblin to die from the orphaned projectile")
	}
}

func TestComboEventsArePublished(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))

	var changes []messages.ComboTierChanged
	var payouts []messages.ComboPayout
	messages.ComboTierChangedEvent.Subscribe(s.World(), func(w donburi.World, ev messages.ComboTierChanged) {
		changes = append(changes, ev)
	})
	messages.ComboPayoutEvent.Subscribe(s.World(), func(w donburi.World, ev messages.ComboPayout) {
		payouts = append(payouts, ev)
	})

	dk := s.World().Entry(mustHostile(t, s, "dragon_knight", 600, 400))
	for i := 0; i < 10; i++ {
		systems.ResolveHit(s.World(), dk, systems.Hit{Attacker: player, Faction: combat.Friendly, Raw: 1, Type: combat.True})
	}
	run(s, 1)

	if len(changes) != 1 || changes[0].Old != combo.None || changes[0].New != combo.Bronze {
		t.Fatalf("Expected one None->Bronze change, got %+v", changes)
	}

	// Let the combo decay.
	run(s, int(cfg.Combo.DecayWindow*60)+5)
	if len(payouts) != 1 || payouts[0].Bonus != combo.Bronze.Bonus() {
		t.Errorf("Expected one Bronze payout, got %+v", payouts)
	}
	if got := s.End().MaxCombo; got != 10 {
		t.Errorf("Expected max combo 10, got %d", got)
	}
}

func TestSpawnUnknownHostile(t *testing.T) {
	s := newSession(t)
	if _, err := s.SpawnHostile("dragon", dmath.Vec2{}); !errors.Is(err, ErrUnknownHostile) {
		t.Errorf("Expected ErrUnknownHostile, got %v", err)
	}
}

func TestEquipItemShiftsLoadout(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(100, 100))
	mustHostile(t, s, "dark_knight", 300, 100)

	if _, full, ok := s.EquipItem(player, abilities.Mango); !ok || full {
		t.Fatalf("Expected first equip to succeed without dropping")
	}
	run(s, 1)

	// Mango moves from Head to Torso.
	s.EquipItem(player, abilities.Carrot)
	slots, _ := s.Slots(player)
	if !slots[abilities.Torso].Occupied || slots[abilities.Torso].Key.Item != abilities.Mango {
		t.Fatalf("Expected Mango on the Torso, got %+v", slots[abilities.Torso])
	}

	s.EquipItem(player, abilities.Pear)
	dropped, full, _ := s.EquipItem(player, abilities.Apple)
	if !full || dropped != abilities.Mango {
		t.Errorf("Expected Mango to drop off, got %v (full=%v)", dropped, full)
	}
}

func projectiles(s *Session) []*components.ProjectileData {
	var out []*components.ProjectileData
	components.Projectile.Each(s.World(), func(e *donburi.Entry) {
		out = append(out, components.Projectile.Get(e))
	})
	return out
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

// hasHeading reports whether one of the projectiles flies along dir.
func hasHeading(ps []*components.ProjectileData, dir dmath.Vec2) bool {
	for _, p := range ps {
		h, ok := gamemath.Normalize(p.Velocity)
		if ok && near(h.X, dir.X) && near(h.Y, dir.Y) {
			return true
		}
	}
	return false
}

func sessionWith(t *testing.T, key abilities.Key, def abilities.Definition) *Session {
	t.Helper()
	c, err := abilities.NewCatalog([]abilities.Entry{{Key: key, Definition: def}})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return NewSession(c)
}

func TestProjectileExpiresWithPierceLeft(t *testing.T) {
	s := sessionWith(t, abilities.Key{Item: abilities.Carrot, Slot: abilities.Head}, abilities.Definition{
		Name:     "Slow Lance",
		Cooldown: 100,
		Payload: abilities.Projectile(abilities.ProjectileSpec{
			Damage: 10, Speed: 10, Pierce: 3, Targeting: abilities.Forward,
		}),
	})
	player := s.SpawnPlayer(dmath.NewVec2(640, 360))
	s.Equip(player, abilities.LoadoutOf(abilities.Carrot))

	run(s, 1)
	ps := projectiles(s)
	if len(ps) != 1 || ps[0].Pierce != 3 {
		t.Fatalf("Expected one projectile with pierce 3, got %d", len(ps))
	}

	run(s, 289)
	if got := count(s.World(), components.Projectile); got != 1 {
		t.Fatalf("Expected the projectile to live until its lifetime ends, got %d", got)
	}

	run(s, 20)
	if got := count(s.World(), components.Projectile); got != 0 {
		t.Errorf("Expected the projectile to expire with pierce left, got %d alive", got)
	}
}

func TestProjectileLeavingArenaIsRemoved(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(1200, 360))
	s.Equip(player, abilities.LoadoutOf(abilities.Carrot))

	// Carrot Lance flies right at 600 px/s.
	run(s, 10)
	if got := count(s.World(), components.Projectile); got != 1 {
		t.Fatalf("Expected the lance inside the arena margin, got %d", got)
	}

	run(s, 20)
	if got := count(s.World(), components.Projectile); got != 0 {
		t.Errorf("Expected the lance to be removed past the arena edge, got %d", got)
	}
}

func TestForwardFiresAlongFacing(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(640, 360))
	s.Equip(player, abilities.LoadoutOf(abilities.Carrot))
	s.Face(player, dmath.NewVec2(0, 3))

	run(s, 1)

	ps := projectiles(s)
	if len(ps) != 1 {
		t.Fatalf("Expected 1 projectile, got %d", len(ps))
	}
	if !hasHeading(ps, dmath.NewVec2(0, 1)) {
		t.Errorf("Expected the lance to fly down, got velocity %+v", ps[0].Velocity)
	}
	if got := gamemath.Length(ps[0].Velocity); !near(got, 600) {
		t.Errorf("Expected speed 600, got %v", got)
	}
}

func TestAllDirectionsFiresEightWays(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(640, 360))
	s.Equip(player, abilities.LoadoutOf(abilities.Pineapple))

	run(s, 1)

	ps := projectiles(s)
	if len(ps) != 8 {
		t.Fatalf("Expected 8 spikes, got %d", len(ps))
	}
	for i := 0; i < 8; i++ {
		dir := gamemath.FromAngle(float64(i) * math.Pi / 4)
		if !hasHeading(ps, dir) {
			t.Errorf("Expected a spike heading %+v", dir)
		}
	}
}

func TestSpiralAdvancesPhaseEachVolley(t *testing.T) {
	s := sessionWith(t, abilities.Key{Item: abilities.Strawberry, Slot: abilities.Head}, abilities.Definition{
		Name:     "Seed Spiral",
		Cooldown: 0.5,
		Payload: abilities.Projectile(abilities.ProjectileSpec{
			Damage: 5, Speed: 10, Targeting: abilities.Spiral,
		}),
	})
	player := s.SpawnPlayer(dmath.NewVec2(640, 360))
	s.Equip(player, abilities.LoadoutOf(abilities.Strawberry))
	step := cfg.Projectile.SpiralStep

	run(s, 1)
	first := projectiles(s)
	if len(first) != 3 {
		t.Fatalf("Expected 3 seeds in the first volley, got %d", len(first))
	}
	for i := 0; i < 3; i++ {
		if dir := gamemath.FromAngle(float64(i) * 2 * math.Pi / 3); !hasHeading(first, dir) {
			t.Errorf("Expected a first-volley seed heading %+v", dir)
		}
	}

	run(s, 39)
	var second []*components.ProjectileData
	for _, p := range projectiles(s) {
		if p.Lifetime > cfg.Projectile.Lifetime-0.4 {
			second = append(second, p)
		}
	}
	if len(second) != 3 {
		t.Fatalf("Expected 3 seeds in the second volley, got %d", len(second))
	}
	for i := 0; i < 3; i++ {
		if dir := gamemath.FromAngle(step + float64(i)*2*math.Pi/3); !hasHeading(second, dir) {
			t.Errorf("Expected a second-volley seed heading %+v", dir)
		}
	}

	slots, _ := s.Slots(player)
	if got := slots[abilities.Head].SpiralPhase; !near(got, 2*step) {
		t.Errorf("Expected spiral phase %v after two volleys, got %v", 2*step, got)
	}
}

func TestHomingBendsTowardTarget(t *testing.T) {
	s := newSession(t)
	player := s.SpawnPlayer(dmath.NewVec2(640, 360))
	s.Equip(player, abilities.LoadoutOf(abilities.Strawberry))
	goblin := mustHostile(t, s, "goblin", 800, 360)

	run(s, 1)
	ps := projectiles(s)
	if len(ps) != 1 || !hasHeading(ps, gamemath.Right) {
		t.Fatalf("Expected one berry flying right at the goblin")
	}

	// The goblin steps below the berry's path.
	s.Move(goblin, dmath.NewVec2(700, 600))
	run(s, 1)

	ps = projectiles(s)
	if len(ps) != 1 {
		t.Fatalf("Expected the berry to still be in flight, got %d", len(ps))
	}
	v := ps[0].Velocity
	if v.Y <= 0 {
		t.Errorf("Expected the berry to turn toward the goblin, got velocity %+v", v)
	}
	if turn := gamemath.Angle(v); turn > 2.0*dt+1e-9 {
		t.Errorf("Expected at most %v radians of turn in one tick, got %v", 2.0*dt, turn)
	}
	if got := gamemath.Length(v); !near(got, 500) {
		t.Errorf("Expected homing to keep speed 500, got %v", got)
	}
}

func TestAreaEffectExpiresBetweenPulses(t *testing.T) {
	s := sessionWith(t, abilities.Key{Item: abilities.Apple, Slot: abilities.Head}, abilities.Definition{
		Name:     "Uneven Field",
		Cooldown: 100,
		Payload: abilities.Area(abilities.AreaSpec{
			DamagePerTick: 5, Radius: 150, TickInterval: 0.7, Duration: 1.0, DamageType: combat.True,
		}),
	})
	player := s.SpawnPlayer(dmath.NewVec2(640, 360))
	s.Equip(player, abilities.LoadoutOf(abilities.Apple))
	mustHostile(t, s, "skeleton", 640, 440)

	var pulses int
	messages.HitLandedEvent.Subscribe(s.World(), func(w donburi.World, ev messages.HitLanded) {
		if ev.Attacker == player {
			pulses++
		}
	})

	run(s, 56)
	if got := count(s.World(), components.AreaEffect); got != 1 {
		t.Fatalf("Expected the zone to outlive its first pulse, got %d", got)
	}
	if pulses != 1 {
		t.Errorf("Expected one pulse by 0.9s, got %d", pulses)
	}

	run(s, 14)
	if got := count(s.World(), components.AreaEffect); got != 0 {
		t.Errorf("Expected the zone to expire after 1s, got %d", got)
	}
	if pulses != 1 {
		t.Errorf("Expected no second pulse, got %d", pulses)
	}
}
