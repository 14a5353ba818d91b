package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/embedded"
)

// GameConfig is the full simulation configuration.
//
// Configuration file: data/game.yaml
type GameConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Wave       WaveConfig       `yaml:"wave"`
	TimeScale  TimeScaleConfig  `yaml:"timeScale"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// ViewportConfig is the initial play-area size. The ebiten adapter replaces it
// with the real layout size every frame.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig describes the player ship at scene start.
type PlayerConfig struct {
	SpawnX        float64 `yaml:"spawnX"`
	SpawnY        float64 `yaml:"spawnY"`
	MovementSpeed float64 `yaml:"movementSpeed"`
	ShotCooldown  float64 `yaml:"shotCooldown"` // seconds
	ShotLimit     int     `yaml:"shotLimit"`    // also the max concurrent shots
	HalfWidth     float64 `yaml:"halfWidth"`
	HalfHeight    float64 `yaml:"halfHeight"`
}

// ProjectileConfig describes player shots.
type ProjectileConfig struct {
	Speed      float64 `yaml:"speed"`
	HalfWidth  float64 `yaml:"halfWidth"`
	HalfHeight float64 `yaml:"halfHeight"`
}

// EnemyConfig describes enemy spawning and movement.
type EnemyConfig struct {
	MovementSpeed float64 `yaml:"movementSpeed"`
	HalfWidth     float64 `yaml:"halfWidth"`
	HalfHeight    float64 `yaml:"halfHeight"`

	// SpawnY is the height enemies appear at.
	SpawnY float64 `yaml:"spawnY"`
	// SpawnBuffer is the horizontal margin removed from the viewport width
	// when sampling a spawn x.
	SpawnBuffer float64 `yaml:"spawnBuffer"`
	// TargetOffsetY is added to the player's y to get the aim point.
	TargetOffsetY float64 `yaml:"targetOffsetY"`
	// DescendY is the line below which enemies stop weaving and go straight down.
	DescendY float64 `yaml:"descendY"`
	// WeaveFrequency is the number of weave cycles per second of simulation time.
	WeaveFrequency float64 `yaml:"weaveFrequency"`
	// ReapEscaped removes enemies that leave through the bottom edge.
	ReapEscaped bool `yaml:"reapEscaped"`
}

// WaveConfig is the initial wave state and the level progression tuning.
type WaveConfig struct {
	Level        int `yaml:"level"`
	TotalEnemies int `yaml:"totalEnemies"`
	EnemyHealth  int `yaml:"enemyHealth"`

	Prev int `yaml:"prev"`
	Curr int `yaml:"curr"`
	Next int `yaml:"next"`

	SpawnInterval   float64 `yaml:"spawnInterval"`   // seconds between spawns
	TransitionDelay float64 `yaml:"transitionDelay"` // seconds between waves

	// Every HealthStepEvery levels the enemy health rises by one and the
	// upcoming enemy count drops by NextReduction.
	HealthStepEvery int `yaml:"healthStepEvery"`
	NextReduction   int `yaml:"nextReduction"`
}

// TimeScaleConfig holds the two time-scale values.
type TimeScaleConfig struct {
	Normal float64 `yaml:"normal"`
	Slow   float64 `yaml:"slow"`
}

// SimulationConfig holds tick-level settings.
type SimulationConfig struct {
	// MaxDeltaTime clamps long frames (window drags, breakpoints).
	MaxDeltaTime float64 `yaml:"maxDeltaTime"`
	// Seed seeds the spawn position generator.
	Seed int64 `yaml:"seed"`
	// RecycleShots gives a shot back to the player whenever a projectile despawns.
	RecycleShots bool `yaml:"recycleShots"`
}

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Viewport: ViewportConfig{
			Width:  DefaultViewportWidth,
			Height: DefaultViewportHeight,
		},
		Player: PlayerConfig{
			SpawnX:        DefaultPlayerSpawnX,
			SpawnY:        DefaultPlayerSpawnY,
			MovementSpeed: DefaultPlayerMovementSpeed,
			ShotCooldown:  DefaultPlayerShotCooldown,
			ShotLimit:     DefaultPlayerShotLimit,
			HalfWidth:     DefaultPlayerHalfWidth,
			HalfHeight:    DefaultPlayerHalfHeight,
		},
		Projectile: ProjectileConfig{
			Speed:      DefaultProjectileSpeed,
			HalfWidth:  DefaultProjectileHalfWidth,
			HalfHeight: DefaultProjectileHalfHeight,
		},
		Enemy: EnemyConfig{
			MovementSpeed:  DefaultEnemyMovementSpeed,
			HalfWidth:      DefaultEnemyHalfWidth,
			HalfHeight:     DefaultEnemyHalfHeight,
			SpawnY:         DefaultEnemySpawnY,
			SpawnBuffer:    DefaultEnemySpawnBuffer,
			TargetOffsetY:  DefaultEnemyTargetOffsetY,
			DescendY:       DefaultEnemyDescendY,
			WeaveFrequency: DefaultEnemyWeaveFrequency,
			ReapEscaped:    true,
		},
		Wave: WaveConfig{
			Level:           DefaultWaveLevel,
			TotalEnemies:    DefaultWaveTotalEnemies,
			EnemyHealth:     DefaultWaveEnemyHealth,
			Prev:            DefaultWavePrev,
			Curr:            DefaultWaveCurr,
			Next:            DefaultWaveNext,
			SpawnInterval:   DefaultWaveSpawnInterval,
			TransitionDelay: DefaultWaveTransitionDelay,
			HealthStepEvery: DefaultWaveHealthStepEvery,
			NextReduction:   DefaultWaveNextReduction,
		},
		TimeScale: TimeScaleConfig{
			Normal: DefaultTimeScaleNormal,
			Slow:   DefaultTimeScaleSlow,
		},
		Simulation: SimulationConfig{
			MaxDeltaTime: DefaultMaxDeltaTime,
			Seed:         DefaultSeed,
			RecycleShots: true,
		},
	}
}

// LoadGameConfig loads a YAML game configuration.
//
// Paths under data/ are read from the embedded file system when it is
// initialized; anything else is read from disk.
func LoadGameConfig(path string) (*GameConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig decodes YAML on top of DefaultGameConfig, so keys missing
// from data keep their default values.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a simulation.
func (c *GameConfig) Validate() error {
	return validateGameConfig(c)
}

// applyDefaults replaces values that were written explicitly as zero but have
// no meaningful zero.
func applyDefaults(cfg *GameConfig) {
	if cfg.Viewport.Width == 0 {
		cfg.Viewport.Width = DefaultViewportWidth
	}
	if cfg.Viewport.Height == 0 {
		cfg.Viewport.Height = DefaultViewportHeight
	}
	if cfg.Projectile.Speed == 0 {
		cfg.Projectile.Speed = DefaultProjectileSpeed
	}
	if cfg.Wave.Level == 0 {
		cfg.Wave.Level = DefaultWaveLevel
	}
	if cfg.Wave.EnemyHealth == 0 {
		cfg.Wave.EnemyHealth = DefaultWaveEnemyHealth
	}
	if cfg.Wave.HealthStepEvery == 0 {
		cfg.Wave.HealthStepEvery = DefaultWaveHealthStepEvery
	}
	if cfg.TimeScale.Normal == 0 {
		cfg.TimeScale.Normal = DefaultTimeScaleNormal
	}
	if cfg.TimeScale.Slow == 0 {
		cfg.TimeScale.Slow = DefaultTimeScaleSlow
	}
	if cfg.Simulation.MaxDeltaTime == 0 {
		cfg.Simulation.MaxDeltaTime = DefaultMaxDeltaTime
	}
}

// validateGameConfig checks ranges and cross-field constraints.
func validateGameConfig(cfg *GameConfig) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	floats := []struct {
		name     string
		value    float64
		positive bool // strictly positive instead of non-negative
	}{
		{"viewport.width", cfg.Viewport.Width, true},
		{"viewport.height", cfg.Viewport.Height, true},
		{"player.movementSpeed", cfg.Player.MovementSpeed, false},
		{"player.shotCooldown", cfg.Player.ShotCooldown, false},
		{"player.halfWidth", cfg.Player.HalfWidth, true},
		{"player.halfHeight", cfg.Player.HalfHeight, true},
		{"projectile.speed", cfg.Projectile.Speed, true},
		{"projectile.halfWidth", cfg.Projectile.HalfWidth, true},
		{"projectile.halfHeight", cfg.Projectile.HalfHeight, true},
		{"enemy.movementSpeed", cfg.Enemy.MovementSpeed, false},
		{"enemy.halfWidth", cfg.Enemy.HalfWidth, true},
		{"enemy.halfHeight", cfg.Enemy.HalfHeight, true},
		{"enemy.spawnBuffer", cfg.Enemy.SpawnBuffer, false},
		{"enemy.weaveFrequency", cfg.Enemy.WeaveFrequency, false},
		{"wave.spawnInterval", cfg.Wave.SpawnInterval, false},
		{"wave.transitionDelay", cfg.Wave.TransitionDelay, false},
		{"timeScale.normal", cfg.TimeScale.Normal, true},
		{"timeScale.slow", cfg.TimeScale.Slow, true},
		{"simulation.maxDeltaTime", cfg.Simulation.MaxDeltaTime, true},
	}
	for _, f := range floats {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be finite, got %v", f.name, f.value)
		}
		if f.positive && f.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", f.name, f.value)
		}
		if !f.positive && f.value < 0 {
			return fmt.Errorf("%s cannot be negative, got %v", f.name, f.value)
		}
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"player.spawnX", cfg.Player.SpawnX},
		{"player.spawnY", cfg.Player.SpawnY},
		{"enemy.spawnY", cfg.Enemy.SpawnY},
		{"enemy.targetOffsetY", cfg.Enemy.TargetOffsetY},
		{"enemy.descendY", cfg.Enemy.DescendY},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be finite, got %v", f.name, f.value)
		}
	}

	if cfg.Enemy.SpawnBuffer >= cfg.Viewport.Width {
		return fmt.Errorf("enemy.spawnBuffer (%v) must be smaller than viewport.width (%v)",
			cfg.Enemy.SpawnBuffer, cfg.Viewport.Width)
	}
	if cfg.TimeScale.Slow > cfg.TimeScale.Normal {
		return fmt.Errorf("timeScale.slow (%v) cannot exceed timeScale.normal (%v)",
			cfg.TimeScale.Slow, cfg.TimeScale.Normal)
	}

	if cfg.Player.ShotLimit < 0 {
		return fmt.Errorf("player.shotLimit cannot be negative, got %d", cfg.Player.ShotLimit)
	}
	if cfg.Wave.Curr > cfg.Wave.TotalEnemies {
		return fmt.Errorf("wave.curr (%d) cannot exceed wave.totalEnemies (%d)",
			cfg.Wave.Curr, cfg.Wave.TotalEnemies)
	}
	if cfg.Wave.Level < 1 {
		return fmt.Errorf("wave.level must be at least 1, got %d", cfg.Wave.Level)
	}
	if cfg.Wave.EnemyHealth < 1 {
		return fmt.Errorf("wave.enemyHealth must be at least 1, got %d", cfg.Wave.EnemyHealth)
	}
	if cfg.Wave.HealthStepEvery < 1 {
		return fmt.Errorf("wave.healthStepEvery must be at least 1, got %d", cfg.Wave.HealthStepEvery)
	}
	for _, c := range []struct {
		name  string
		value int
	}{
		{"wave.totalEnemies", cfg.Wave.TotalEnemies},
		{"wave.prev", cfg.Wave.Prev},
		{"wave.curr", cfg.Wave.Curr},
		{"wave.next", cfg.Wave.Next},
		{"wave.nextReduction", cfg.Wave.NextReduction},
	} {
		if c.value < 0 {
			return fmt.Errorf("%s cannot be negative, got %d", c.name, c.value)
		}
	}

	return nil
}
