package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// File mirrors the global configuration instances so a config file can
// override any subset of them.
type File struct {
	Combat      CombatConfig      `mapstructure:"combat"`
	Combo       ComboConfig       `mapstructure:"combo"`
	Projectile  ProjectileConfig  `mapstructure:"projectile"`
	Targeting   TargetingConfig   `mapstructure:"targeting"`
	Summon      SummonConfig      `mapstructure:"summon"`
	Health      HealthConfig      `mapstructure:"health"`
	Arena       ArenaConfig       `mapstructure:"arena"`
	Player      PlayerConfig      `mapstructure:"player"`
	Hostile     HostileConfig     `mapstructure:"hostile"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
}

// Current returns a snapshot of the global configuration.
func Current() File {
	return File{
		Combat:      Combat,
		Combo:       Combo,
		Projectile:  Projectile,
		Targeting:   Targeting,
		Summon:      Summon,
		Health:      Health,
		Arena:       Arena,
		Player:      Player,
		Hostile:     Hostile,
		Leaderboard: Leaderboard,
	}
}

// Apply replaces the global configuration with f.
func Apply(f File) {
	Combat = f.Combat
	Combo = f.Combo
	Projectile = f.Projectile
	Targeting = f.Targeting
	Summon = f.Summon
	Health = f.Health
	Arena = f.Arena
	Player = f.Player
	Hostile = f.Hostile
	Leaderboard = f.Leaderboard
}

// Load overlays the file at configPath and FRUITFIGHT_* environment
// variables on top of the defaults. Keys missing from the file keep their
// default values.
func Load(configPath string) error {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("fruitfight")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", configPath, err)
	}

	f := Current()
	if err := v.Unmarshal(&f); err != nil {
		return fmt.Errorf("parse config %s: %w", configPath, err)
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", configPath, err)
	}

	Apply(f)
	return nil
}

// Validate rejects values the simulation cannot run with.
func (f File) Validate() error {
	switch {
	case f.Combat.ImmunityWindow < 0:
		return fmt.Errorf("combat.immunity_window must not be negative")
	case f.Combat.MinimumDamage < 1:
		return fmt.Errorf("combat.minimum_damage must be at least 1")
	case f.Combo.DecayWindow <= 0:
		return fmt.Errorf("combo.decay_window must be positive")
	case f.Projectile.Lifetime <= 0:
		return fmt.Errorf("projectile.lifetime must be positive")
	case f.Projectile.AllDirections < 1 || f.Projectile.SpiralCount < 1:
		return fmt.Errorf("projectile direction counts must be positive")
	case f.Summon.OrbitPeriod <= 0:
		return fmt.Errorf("summon.orbit_period must be positive")
	case f.Summon.TurretRate <= 0:
		return fmt.Errorf("summon.turret_rate must be positive")
	case f.Summon.HitInterval < 0:
		return fmt.Errorf("summon.hit_interval must not be negative")
	case f.Health.RegenInterval <= 0:
		return fmt.Errorf("health.regen_interval must be positive")
	case f.Arena.CellSize <= 0:
		return fmt.Errorf("arena.cell_size must be positive")
	}
	return nil
}
