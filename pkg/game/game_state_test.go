package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/config"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/types"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"
)

func TestNewGameStateFromDefaults(t *testing.T) {
	gs := NewGameState(config.DefaultGameConfig())

	assert.Equal(t, 1, gs.Wave.Level)
	assert.Equal(t, 1, gs.Wave.TotalEnemies)
	assert.Equal(t, 1, gs.Wave.EnemyHealth)
	assert.Equal(t, 75.0, gs.Wave.EnemySpeed)
	assert.Equal(t, types.WaveActive, gs.Wave.Phase)
	assert.Equal(t, EnemyCount{Prev: 1, Curr: 1, Next: 2}, gs.Enemies)
	assert.Equal(t, 1.0, gs.TimeScale)
	assert.Equal(t, utils.Vec2{X: 0, Y: -200}, gs.Cursor)
	assert.False(t, gs.Wave.SpawnTimer.Finished())
	assert.False(t, gs.Wave.TransitionTimer.Finished())
	assert.Equal(t, 3.0, gs.Wave.TransitionTimer.Duration())

	hw, hh := gs.HalfExtents()
	assert.Equal(t, 540.0, hw)
	assert.Equal(t, 460.0, hh)
	require.NotNil(t, gs.RNG)
	require.NotNil(t, gs.Log)
}

func TestSeedIsDeterministic(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Simulation.Seed = 7
	a := NewGameState(cfg)
	b := NewGameState(cfg)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.RNG.Float64(), b.RNG.Float64())
	}
}

func TestEnemyCountSaturates(t *testing.T) {
	c := EnemyCount{Prev: 1, Curr: 1, Next: 3}

	assert.True(t, c.DecrementCurr())
	assert.False(t, c.DecrementCurr(), "decrement at zero must be a no-op")
	assert.Equal(t, 0, c.Curr)

	c.ReduceNext(5)
	assert.Equal(t, 0, c.Next)
}

func TestSaturatingSub(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{5, 3, 2},
		{3, 3, 0},
		{2, 5, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, saturatingSub(tt.a, tt.b), "saturatingSub(%d, %d)", tt.a, tt.b)
	}
}

func TestRecordKillAndEscape(t *testing.T) {
	gs := NewGameState(config.DefaultGameConfig())
	gs.Enemies.Curr = 2

	gs.RecordKill()
	gs.RecordEscape()
	gs.RecordKill()

	assert.Equal(t, 2, gs.Kills)
	assert.Equal(t, 1, gs.Escaped)
	assert.Equal(t, 0, gs.Enemies.Curr)
}

func TestSpawnBudget(t *testing.T) {
	w := WaveState{TotalEnemies: 2}
	assert.True(t, w.SpawnBudgetLeft())
	w.Spawned = 2
	assert.False(t, w.SpawnBudgetLeft())
}

func TestFrameInputLastPointer(t *testing.T) {
	_, ok := FrameInput{}.LastPointer()
	assert.False(t, ok)

	in := FrameInput{PointerMoves: []utils.Vec2{{X: 1, Y: 1}, {X: 2, Y: 3}}}
	p, ok := in.LastPointer()
	require.True(t, ok)
	assert.Equal(t, utils.Vec2{X: 2, Y: 3}, p)
}
