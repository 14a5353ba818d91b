package game

import (
	"math/rand"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/config"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/types"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"
)

// InitialCursor is the cursor position before any pointer movement.
var InitialCursor = utils.Vec2{X: 0, Y: -200}

// GameState is the simulation context shared by all systems of one scene.
// It is created per scene and passed explicitly; there is no global instance.
type GameState struct {
	Config *config.GameConfig

	Wave    WaveState
	Enemies EnemyCount

	// Input is the frame input of the tick being simulated.
	Input FrameInput

	// TimeScale multiplies all motion of the current tick.
	TimeScale float64
	// ElapsedTime is the cumulative unscaled simulation time in seconds.
	ElapsedTime float64
	// Tick counts completed simulation ticks.
	Tick int

	// Cursor is the last known pointer position in world coordinates.
	Cursor utils.Vec2

	ViewportWidth  float64
	ViewportHeight float64

	// Statistics
	Kills      int
	Escaped    int
	ShotsFired int

	RNG *rand.Rand
	Log *SimLog
}

// NewGameState builds the initial state from cfg. The caller owns cfg and must
// have validated it.
func NewGameState(cfg *config.GameConfig) *GameState {
	w := cfg.Wave
	return &GameState{
		Config: cfg,
		Wave: WaveState{
			Level:           w.Level,
			TotalEnemies:    w.TotalEnemies,
			EnemyHealth:     w.EnemyHealth,
			EnemySpeed:      cfg.Enemy.MovementSpeed,
			SpawnTimer:      utils.NewTimer(w.SpawnInterval, utils.TimerOnce),
			TransitionTimer: utils.NewTimer(w.TransitionDelay, utils.TimerOnce),
			Phase:           types.WaveActive,
		},
		Enemies: EnemyCount{
			Prev: w.Prev,
			Curr: w.Curr,
			Next: w.Next,
		},
		TimeScale:      cfg.TimeScale.Normal,
		Cursor:         InitialCursor,
		ViewportWidth:  cfg.Viewport.Width,
		ViewportHeight: cfg.Viewport.Height,
		RNG:            rand.New(rand.NewSource(cfg.Simulation.Seed)), // #nosec G404 -- gameplay randomness
		Log:            NewSimLog(false),
	}
}

// HalfExtents returns half of the viewport size.
func (gs *GameState) HalfExtents() (float64, float64) {
	return gs.ViewportWidth / 2, gs.ViewportHeight / 2
}

// RecordKill counts a destroyed enemy and removes it from the wave.
func (gs *GameState) RecordKill() {
	gs.Kills++
	gs.Enemies.DecrementCurr()
}

// RecordEscape counts an enemy that left the play area and removes it from
// the wave, so the wave can still be cleared.
func (gs *GameState) RecordEscape() {
	gs.Escaped++
	gs.Enemies.DecrementCurr()
}
