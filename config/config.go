package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ECS layer the simulation uses.
const Default ecs.LayerID = 0

// CombatConfig contains the damage pipeline tunables
type CombatConfig struct {
	ImmunityWindow     float64 `mapstructure:"immunity_window"`     // Seconds of contact immunity after a contact hit
	MagicMultiplier    float64 `mapstructure:"magic_multiplier"`    // Applied to post-armor magic damage, truncated
	MinimumDamage      int     `mapstructure:"minimum_damage"`      // Armor can never reduce a hit below this
	ContactRetaliation bool    `mapstructure:"contact_retaliation"` // Friendly actors deal contact damage back
	MaxCooldownCut     float64 `mapstructure:"max_cooldown_cut"`    // Upper bound on talent cooldown reduction
}

// ComboConfig contains combo tracker tunables
type ComboConfig struct {
	DecayWindow float64 `mapstructure:"decay_window"`
	HitPoints   int     `mapstructure:"hit_points"`
	KillPoints  int     `mapstructure:"kill_points"`
	// SpecialKillPoints is awarded for boss kills
	SpecialKillPoints int `mapstructure:"special_kill_points"`
}

// ProjectileConfig contains projectile simulation tunables
type ProjectileConfig struct {
	Lifetime      float64 `mapstructure:"lifetime"`
	ColliderSize  float64 `mapstructure:"collider_size"`
	AllDirections int     `mapstructure:"all_directions"`
	SpiralCount   int     `mapstructure:"spiral_count"`
	SpiralStep    float64 `mapstructure:"spiral_step"` // Radians the spiral rotates per trigger
	ExitMargin    float64 `mapstructure:"exit_margin"` // Distance outside the arena before despawn
}

// TargetingConfig contains trigger and targeting tunables
type TargetingConfig struct {
	// MaxRange limits Nearest targeting. Zero disables the limit.
	MaxRange float64 `mapstructure:"max_range"`
}

// SummonConfig contains summon tunables
type SummonConfig struct {
	OrbitRadius   float64 `mapstructure:"orbit_radius"`
	OrbitPeriod   float64 `mapstructure:"orbit_period"`
	Size          float64 `mapstructure:"size"`
	Damage        int     `mapstructure:"damage"`
	HitInterval   float64 `mapstructure:"hit_interval"`
	TurretRate    float64 `mapstructure:"turret_rate"` // Seconds between turret shots
	TurretDamage  int     `mapstructure:"turret_damage"`
	TurretSpeed   float64 `mapstructure:"turret_speed"`
	TurretOffsetX float64 `mapstructure:"turret_offset_x"`
}

// HealthConfig contains regeneration tunables
type HealthConfig struct {
	RegenInterval float64 `mapstructure:"regen_interval"`
}

// ArenaConfig describes the playable rectangle and its broadphase grid
type ArenaConfig struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	CellSize  int    `mapstructure:"cell_size"`
	TickRate  int    `mapstructure:"tick_rate"`
	LevelPath string `mapstructure:"level_path"`
}

// PlayerConfig contains the controlled actor's base stats
type PlayerConfig struct {
	Health    int     `mapstructure:"health"`
	Damage    int     `mapstructure:"damage"`
	Armor     int     `mapstructure:"armor"`
	RegenRate float64 `mapstructure:"regen_rate"`
	Speed     float64 `mapstructure:"speed"`
	Size      float64 `mapstructure:"size"`
}

// HostileTypeConfig contains configuration for specific hostile types
type HostileTypeConfig struct {
	Name   string  `mapstructure:"name"`
	Health int     `mapstructure:"health"`
	Damage int     `mapstructure:"damage"`
	Armor  int     `mapstructure:"armor"`
	Speed  float64 `mapstructure:"speed"`
	Size   float64 `mapstructure:"size"`
	Boss   bool    `mapstructure:"boss"`
}

// HostileConfig contains the hostile roster
type HostileConfig struct {
	Types map[string]HostileTypeConfig `mapstructure:"types"`
}

// LeaderboardConfig contains the optional redis leaderboard settings
type LeaderboardConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
	Size     int    `mapstructure:"size"`
}

// Global configuration instances
var Combat CombatConfig
var Combo ComboConfig
var Projectile ProjectileConfig
var Targeting TargetingConfig
var Summon SummonConfig
var Health HealthConfig
var Arena ArenaConfig
var Player PlayerConfig
var Hostile HostileConfig
var Leaderboard LeaderboardConfig

func init() {
	Combat = CombatConfig{
		ImmunityWindow:     0.5,
		MagicMultiplier:    1.2,
		MinimumDamage:      1,
		ContactRetaliation: true,
		MaxCooldownCut:     0.9,
	}

	Combo = ComboConfig{
		DecayWindow:       3.0,
		HitPoints:         1,
		KillPoints:        2,
		SpecialKillPoints: 5,
	}

	Projectile = ProjectileConfig{
		Lifetime:      5.0,
		ColliderSize:  10,
		AllDirections: 8,
		SpiralCount:   3,
		SpiralStep:    0.2618, // ~15 degrees
		ExitMargin:    64,
	}

	Targeting = TargetingConfig{
		MaxRange: 600,
	}

	Summon = SummonConfig{
		OrbitRadius:   48,
		OrbitPeriod:   1.5,
		Size:          16,
		Damage:        6,
		HitInterval:   0.5,
		TurretRate:    1.0,
		TurretDamage:  8,
		TurretSpeed:   350,
		TurretOffsetX: 24,
	}

	Health = HealthConfig{
		RegenInterval: 1.0,
	}

	Arena = ArenaConfig{
		Width:    1280,
		Height:   720,
		CellSize: 32,
		TickRate: 60,
	}

	Player = PlayerConfig{
		Health:    100,
		Damage:    10,
		Armor:     5,
		RegenRate: 1.0,
		Speed:     200,
		Size:      28,
	}

	Hostile = HostileConfig{
		Types: map[string]HostileTypeConfig{
			"goblin":        {Name: "Goblin", Health: 30, Damage: 5, Armor: 0, Speed: 110, Size: 24},
			"skeleton":      {Name: "Skeleton", Health: 50, Damage: 8, Armor: 2, Speed: 90, Size: 28},
			"orc":           {Name: "Orc", Health: 80, Damage: 12, Armor: 5, Speed: 70, Size: 32},
			"dark_knight":   {Name: "DarkKnight", Health: 150, Damage: 20, Armor: 10, Speed: 60, Size: 32},
			"necromancer":   {Name: "Necromancer", Health: 100, Damage: 15, Armor: 3, Speed: 65, Size: 28},
			"goblin_king":   {Name: "GoblinKing", Health: 500, Damage: 25, Armor: 5, Speed: 55, Size: 48, Boss: true},
			"lich_lord":     {Name: "LichLord", Health: 800, Damage: 40, Armor: 10, Speed: 45, Size: 48, Boss: true},
			"dragon_knight": {Name: "DragonKnight", Health: 1200, Damage: 60, Armor: 15, Speed: 40, Size: 56, Boss: true},
		},
	}

	Leaderboard = LeaderboardConfig{
		Addr: "localhost:6379",
		Key:  "fruitfight:combos",
		Size: 10,
	}
}
