package systems

import (
	"fmt"
	"log"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/game"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/types"
)

// WaveSystem drives level progression.
//
// States:
//   - Active: enemies of the level remain (curr > 0)
//   - Clearing: curr == 0; spawn timer paused, transition timer running
//
// Active -> Clearing on the tick curr reaches 0. Clearing -> Active when the
// transition timer finishes, after advancing the level:
//
//	level++
//	prev = total
//	every healthStepEvery levels: health++, next = max(0, next-nextReduction)
//	curr = next; next = curr + prev
//	total = curr
//
// The transition timer is one-shot: it runs at session start (the opening
// delay before the first spawn) and again after each reset on entering
// Clearing. If a level starts with no enemies the system stays in Clearing
// and advances again after another transition period.
type WaveSystem struct {
	gameState *game.GameState
}

// NewWaveSystem creates a wave system.
func NewWaveSystem(gs *game.GameState) *WaveSystem {
	return &WaveSystem{gameState: gs}
}

// Update advances the wave state machine by one tick.
func (s *WaveSystem) Update(deltaTime float64) error {
	wave := &s.gameState.Wave

	switch wave.Phase {
	case types.WaveActive:
		wave.TransitionTimer.Tick(deltaTime)
		if s.gameState.Enemies.Curr == 0 {
			s.enterClearing()
		}
	case types.WaveClearing:
		wave.TransitionTimer.Tick(deltaTime)
		if wave.TransitionTimer.Finished() {
			s.AdvanceLevel()
		}
	}
	return nil
}

// enterClearing pauses spawning and restarts the transition timer.
func (s *WaveSystem) enterClearing() {
	gs := s.gameState
	gs.Wave.Phase = types.WaveClearing
	gs.Wave.SpawnTimer.Pause()
	gs.Wave.TransitionTimer.Reset()

	log.Printf("[WaveSystem] Level %d cleared", gs.Wave.Level)
	gs.Log.Add(gs.Tick, game.LogCategoryWave, "cleared",
		fmt.Sprintf("level %d cleared", gs.Wave.Level), float64(gs.Wave.Level))
}

// AdvanceLevel moves to the next level and restarts spawning.
func (s *WaveSystem) AdvanceLevel() {
	gs := s.gameState
	wave := &gs.Wave
	counts := &gs.Enemies
	cfg := gs.Config.Wave

	wave.Level++
	counts.Prev = wave.TotalEnemies
	if wave.Level%cfg.HealthStepEvery == 0 {
		wave.EnemyHealth++
		counts.ReduceNext(cfg.NextReduction)
		log.Printf("[WaveSystem] Level %d: enemy health raised to %d", wave.Level, wave.EnemyHealth)
	}
	counts.Curr = counts.Next
	counts.Next = counts.Curr + counts.Prev
	wave.TotalEnemies = counts.Curr

	wave.Spawned = 0
	wave.SpawnTimer.Reset()
	wave.SpawnTimer.Unpause()

	if counts.Curr == 0 {
		wave.Phase = types.WaveClearing
		wave.TransitionTimer.Reset()
		log.Printf("[WaveSystem] Level %d has no enemies, skipping", wave.Level)
		gs.Log.Add(gs.Tick, game.LogCategoryWave, "level_empty",
			fmt.Sprintf("level %d has no enemies", wave.Level), float64(wave.Level))
		return
	}

	wave.Phase = types.WaveActive
	log.Printf("[WaveSystem] Level %d: %d enemies (prev=%d, next=%d, health=%d)",
		wave.Level, counts.Curr, counts.Prev, counts.Next, wave.EnemyHealth)
	gs.Log.Add(gs.Tick, game.LogCategoryWave, "level_start",
		fmt.Sprintf("level %d: %d enemies", wave.Level, counts.Curr), float64(wave.Level))
}
