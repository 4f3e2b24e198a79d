package abilities

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/fruitfight/combat"
)

func TestDefaultCatalogIsComplete(t *testing.T) {
	c := Default()
	if c.Len() != ItemKindCount*SlotCount {
		t.Fatalf("Expected %d abilities, got %d", ItemKindCount*SlotCount, c.Len())
	}
	for item := ItemKind(0); item < ItemKindCount; item++ {
		for slot := BodySlot(0); slot < SlotCount; slot++ {
			def, ok := c.Lookup(Key{item, slot})
			if !ok {
				t.Errorf("Missing ability for %s", Key{item, slot})
				continue
			}
			if def.Name == "" || def.Cooldown <= 0 {
				t.Errorf("Bad definition for %s: %+v", Key{item, slot}, def)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	c := Default()
	tests := []struct {
		name string
		key  Key
		want string
		ok   bool
	}{
		{"mango head", Key{Mango, Head}, "Mango Bomb", true},
		{"pear torso", Key{Pear, Torso}, "Healing Pulse", true},
		{"coconut legs", Key{Coconut, Legs}, "Earthquake", true},
		{"item out of range", Key{ItemKind(7), Head}, "", false},
		{"negative slot", Key{Mango, BodySlot(-1)}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, ok := c.Lookup(tt.key)
			if ok != tt.ok || def.Name != tt.want {
				t.Errorf("Expected (%q, %v), got (%q, %v)", tt.want, tt.ok, def.Name, ok)
			}
		})
	}

	var nilCatalog *Catalog
	if _, ok := nilCatalog.Lookup(Key{Mango, Head}); ok {
		t.Error("Expected nil catalog lookup to miss")
	}
}

func TestMangoBombPayload(t *testing.T) {
	def, _ := Default().Lookup(Key{Mango, Head})
	if def.Payload.Kind != PayloadProjectile {
		t.Fatalf("Expected projectile payload, got %s", def.Payload.Kind)
	}
	p := def.Payload.Projectile
	if p.Damage != 30 || p.Pierce != 0 || p.Targeting != Nearest {
		t.Errorf("Unexpected Mango Bomb payload %+v", p)
	}
}

func TestNewCatalogRejectsBadData(t *testing.T) {
	proj := Projectile(ProjectileSpec{Damage: 1, Speed: 100})
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"zero cooldown", []Entry{{Key{Mango, Head}, Definition{"x", 0, proj}}}},
		{"negative cooldown", []Entry{{Key{Mango, Head}, Definition{"x", -1, proj}}}},
		{"nan cooldown", []Entry{{Key{Mango, Head}, Definition{"x", math.NaN(), proj}}}},
		{"zero speed", []Entry{{Key{Mango, Head}, Definition{"x", 1, Projectile(ProjectileSpec{Speed: 0})}}}},
		{"negative pierce", []Entry{{Key{Mango, Head}, Definition{"x", 1, Projectile(ProjectileSpec{Speed: 1, Pierce: -1})}}}},
		{"zero radius", []Entry{{Key{Mango, Torso}, Definition{"x", 1, Area(AreaSpec{TickInterval: 1, Duration: 1})}}}},
		{"zero tick", []Entry{{Key{Mango, Torso}, Definition{"x", 1, Area(AreaSpec{Radius: 1, Duration: 1})}}}},
		{"zero area duration", []Entry{{Key{Mango, Torso}, Definition{"x", 1, Area(AreaSpec{Radius: 1, TickInterval: 1})}}}},
		{"zero buff duration", []Entry{{Key{Apple, Torso}, Definition{"x", 1, Buff(BuffSpec{})}}}},
		{"zero summons", []Entry{{Key{Apple, Torso}, Definition{"x", 1, Summon(SummonSpec{Duration: 1})}}}},
		{"unknown payload", []Entry{{Key{Apple, Torso}, Definition{"x", 1, Payload{Kind: PayloadKind(9)}}}}},
		{"bad key", []Entry{{Key{ItemKind(9), Head}, Definition{"x", 1, proj}}}},
		{"duplicate", []Entry{
			{Key{Mango, Head}, Definition{"a", 1, proj}},
			{Key{Mango, Head}, Definition{"b", 1, proj}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.entries)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !errors.Is(err, ErrInvalidDefinition) {
				t.Errorf("Expected ErrInvalidDefinition, got %v", err)
			}
			if c != nil {
				t.Error("Expected no catalog on error")
			}
		})
	}
}

func TestMustCatalogPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustCatalog to panic on bad data")
		}
	}()
	MustCatalog([]Entry{{Key{Mango, Head}, Definition{"broken", 0, Buff(BuffSpec{Duration: 1})}}})
}

func TestPartialCatalog(t *testing.T) {
	c, err := NewCatalog([]Entry{
		{Key{Apple, Torso}, Definition{"Life Steal", 10, Buff(BuffSpec{
			Modifier: combat.StatModifier{Kind: combat.LifeSteal, Factor: 0.3}, Duration: 5,
		})}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", c.Len())
	}
	if _, ok := c.Lookup(Key{Apple, Head}); ok {
		t.Error("Expected undefined key to miss")
	}
}
