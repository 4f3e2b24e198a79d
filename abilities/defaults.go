package abilities

import "github.com/automoto/fruitfight/combat"

// DefaultEntries is the full 7x3 ability table.
//
// Short-lived area effects use a tick interval equal to their duration so
// they resolve exactly once before expiring.
func DefaultEntries() []Entry {
	return []Entry{
		// Strawberry: speed
		{Key{Strawberry, Head}, Definition{"Rapid Fire", 0.5, Projectile(ProjectileSpec{
			Damage: 5, Speed: 500, Targeting: Nearest, Visual: VisualStrawberry, Homing: 2.0,
		})}},
		{Key{Strawberry, Torso}, Definition{"Speed Field", 10, Area(AreaSpec{
			DamagePerTick: 0, Radius: 150, TickInterval: 0.5, Duration: 5, Effect: SlowField, DamageType: combat.Ice,
		})}},
		{Key{Strawberry, Legs}, Definition{"Berry Trail", 2, Area(AreaSpec{
			DamagePerTick: 3, Radius: 30, TickInterval: 0.2, Duration: 3, Effect: BurnGround, DamageType: combat.Fire,
		})}},

		// Pear: bounce and heal
		{Key{Pear, Head}, Definition{"Bouncing Pear", 2, Projectile(ProjectileSpec{
			Damage: 15, Speed: 300, Pierce: 3, Targeting: Nearest, Visual: VisualPear, Homing: 3.0,
		})}},
		{Key{Pear, Torso}, Definition{"Healing Pulse", 5, Area(AreaSpec{
			DamagePerTick: -10, Radius: 50, TickInterval: 0.1, Duration: 0.1, Effect: HealingAura,
		})}},
		{Key{Pear, Legs}, Definition{"Slippery Escape", 4, Area(AreaSpec{
			DamagePerTick: 2, Radius: 40, TickInterval: 0.3, Duration: 4, Effect: SlowField, DamageType: combat.Ice,
		})}},

		// Mango: fire
		{Key{Mango, Head}, Definition{"Mango Bomb", 3, Projectile(ProjectileSpec{
			Damage: 30, Speed: 250, Targeting: Nearest, Visual: VisualMango, DamageType: combat.Fire,
		})}},
		{Key{Mango, Torso}, Definition{"Burning Aura", 1, Area(AreaSpec{
			DamagePerTick: 8, Radius: 100, TickInterval: 0.5, Duration: 0.5, Effect: Explosion, DamageType: combat.Fire,
		})}},
		{Key{Mango, Legs}, Definition{"Molten Step", 1, Area(AreaSpec{
			DamagePerTick: 12, Radius: 50, TickInterval: 0.5, Duration: 3, Effect: BurnGround, DamageType: combat.Fire,
		})}},

		// Pineapple: spikes
		{Key{Pineapple, Head}, Definition{"Spike Volley", 2.5, Projectile(ProjectileSpec{
			Damage: 10, Speed: 400, Pierce: 1, Targeting: AllDirections, Visual: VisualPineapple, DamageType: combat.Poison,
		})}},
		{Key{Pineapple, Torso}, Definition{"Spike Shield", 8, Summon(SummonSpec{
			Kind: Shield, Duration: 5, Count: 3,
		})}},
		{Key{Pineapple, Legs}, Definition{"Spike Dash", 5, Area(AreaSpec{
			DamagePerTick: 20, Radius: 35, TickInterval: 0.2, Duration: 2.5, Effect: BurnGround,
		})}},

		// Apple: gravity
		{Key{Apple, Head}, Definition{"Newton's Force", 4, Area(AreaSpec{
			DamagePerTick: 5, Radius: 150, TickInterval: 0.2, Duration: 2, Effect: SlowField, DamageType: combat.Magic,
		})}},
		{Key{Apple, Torso}, Definition{"Life Steal", 10, Buff(BuffSpec{
			Modifier: combat.StatModifier{Kind: combat.LifeSteal, Factor: 0.3}, Duration: 5,
		})}},
		{Key{Apple, Legs}, Definition{"Gravity Slam", 6, Area(AreaSpec{
			DamagePerTick: 45, Radius: 120, TickInterval: 0.2, Duration: 0.2, Effect: Explosion, DamageType: combat.Magic,
		})}},

		// Carrot: piercing
		{Key{Carrot, Head}, Definition{"Carrot Lance", 1.5, Projectile(ProjectileSpec{
			Damage: 20, Speed: 600, Pierce: 5, Targeting: Forward, Visual: VisualCarrot,
		})}},
		{Key{Carrot, Torso}, Definition{"Root Spikes", 3, Area(AreaSpec{
			DamagePerTick: 15, Radius: 120, TickInterval: 0.5, Duration: 2, Effect: BurnGround,
		})}},
		{Key{Carrot, Legs}, Definition{"Burrow", 6, Buff(BuffSpec{
			Modifier: combat.StatModifier{Kind: combat.ArmorBoost, Flat: 100}, Duration: 1,
		})}},

		// Coconut: heavy
		{Key{Coconut, Head}, Definition{"Coconut Cannon", 3.5, Projectile(ProjectileSpec{
			Damage: 40, Speed: 200, Targeting: Nearest, Visual: VisualCoconut,
		})}},
		{Key{Coconut, Torso}, Definition{"Hard Shell", 12, Buff(BuffSpec{
			Modifier: combat.StatModifier{Kind: combat.ArmorBoost, Flat: 20}, Duration: 6,
		})}},
		{Key{Coconut, Legs}, Definition{"Earthquake", 5, Area(AreaSpec{
			DamagePerTick: 35, Radius: 200, TickInterval: 0.1, Duration: 0.1, Effect: Explosion, DamageType: combat.True,
		})}},
	}
}

// Default returns the standard catalog.
func Default() *Catalog {
	return MustCatalog(DefaultEntries())
}
