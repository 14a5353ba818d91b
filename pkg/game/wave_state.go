package game

import (
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/types"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"
)

// WaveState is the progression state of the current level.
type WaveState struct {
	Level        int     // current level, starts at 1
	TotalEnemies int     // enemies assigned to the current level
	EnemyHealth  int     // health of newly spawned enemies
	EnemySpeed   float64 // movement speed of newly spawned enemies
	Spawned      int     // enemies spawned during the current level

	SpawnTimer      utils.Timer // cadence between spawns
	TransitionTimer utils.Timer // pause between two levels

	Phase types.WavePhase
}

// SpawnBudgetLeft reports whether the current level may spawn another enemy.
func (w *WaveState) SpawnBudgetLeft() bool {
	return w.Spawned < w.TotalEnemies
}

// EnemyCount tracks enemies of the previous, current and upcoming level.
//
// Curr is the number of enemies of the current level still alive or not yet
// spawned. It never increases except when a level starts.
type EnemyCount struct {
	Prev int
	Curr int
	Next int
}

// DecrementCurr removes one enemy from Curr, saturating at zero.
// It returns true when Curr changed.
func (c *EnemyCount) DecrementCurr() bool {
	if c.Curr <= 0 {
		c.Curr = 0
		return false
	}
	c.Curr--
	return true
}

// ReduceNext lowers Next by n, saturating at zero.
func (c *EnemyCount) ReduceNext(n int) {
	c.Next = saturatingSub(c.Next, n)
}

// saturatingSub returns a-b, or 0 when the result would be negative.
func saturatingSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
