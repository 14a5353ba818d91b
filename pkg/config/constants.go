package config

// Default values of the simulation. data/game.yaml overrides them; any key
// missing from the file keeps the value below.

// Viewport
const (
	DefaultViewportWidth  = 1080.0
	DefaultViewportHeight = 920.0
)

// Player
const (
	DefaultPlayerSpawnX        = 0.0
	DefaultPlayerSpawnY        = -300.0
	DefaultPlayerMovementSpeed = 1000.0
	DefaultPlayerShotCooldown  = 0.5 // seconds
	DefaultPlayerShotLimit     = 3
	DefaultPlayerHalfWidth     = 30.0
	DefaultPlayerHalfHeight    = 20.0
)

// Projectile
const (
	DefaultProjectileSpeed      = 500.0
	DefaultProjectileHalfWidth  = 25.0
	DefaultProjectileHalfHeight = 10.0
)

// Enemy
const (
	DefaultEnemyMovementSpeed  = 75.0
	DefaultEnemyHalfWidth      = 35.0
	DefaultEnemyHalfHeight     = 35.0
	DefaultEnemySpawnY         = 500.0
	DefaultEnemySpawnBuffer    = 50.0
	DefaultEnemyTargetOffsetY  = -175.0
	DefaultEnemyDescendY       = -175.0
	DefaultEnemyWeaveFrequency = 1.0 // cycles per second
)

// Wave
const (
	DefaultWaveLevel           = 1
	DefaultWaveTotalEnemies    = 1
	DefaultWaveEnemyHealth     = 1
	DefaultWavePrev            = 1
	DefaultWaveCurr            = 1
	DefaultWaveNext            = 2
	DefaultWaveSpawnInterval   = 1.0 // seconds
	DefaultWaveTransitionDelay = 3.0 // seconds
	DefaultWaveHealthStepEvery = 5
	DefaultWaveNextReduction   = 5
)

// Time scale
const (
	DefaultTimeScaleNormal = 1.0
	DefaultTimeScaleSlow   = 0.5
)

// Simulation
const (
	DefaultMaxDeltaTime = 0.1 // seconds, longer frames are clamped
	DefaultSeed         = int64(1)
)

// DefaultConfigPath is the embedded location of the game configuration.
const DefaultConfigPath = "data/game.yaml"
