package systems

import (
	"fmt"
	"log"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/ecs"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/entities"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/game"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/types"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"
)

// EnemySpawnSystem materializes at most one enemy per tick.
//
// Spawn gate:
//   - the spawn timer has finished
//   - the level-transition timer has finished
//   - the level still has spawn budget (spawned < total enemies)
//   - the wave is active and has enemies left
//
// When the gate fails the spawn timer is ticked instead. The spawn timer is
// paused while the wave director is clearing, so it does not advance then.
type EnemySpawnSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewEnemySpawnSystem creates an enemy spawn system.
func NewEnemySpawnSystem(em *ecs.EntityManager, gs *game.GameState) *EnemySpawnSystem {
	return &EnemySpawnSystem{entityManager: em, gameState: gs}
}

// Update spawns an enemy or advances the spawn timer.
func (s *EnemySpawnSystem) Update(deltaTime float64) error {
	wave := &s.gameState.Wave

	if !s.canSpawn() {
		wave.SpawnTimer.Tick(deltaTime)
		return nil
	}

	if err := s.spawn(); err != nil {
		return fmt.Errorf("enemy spawn: %w", err)
	}
	wave.SpawnTimer.Reset()
	wave.Spawned++
	return nil
}

func (s *EnemySpawnSystem) canSpawn() bool {
	gs := s.gameState
	return gs.Wave.SpawnTimer.Finished() &&
		gs.Wave.TransitionTimer.Finished() &&
		gs.Wave.SpawnBudgetLeft() &&
		gs.Wave.Phase == types.WaveActive &&
		gs.Enemies.Curr > 0
}

// SpawnX samples a spawn x uniformly in [-(width-buffer)/2, (width-buffer)/2).
// If the range is empty it returns 0.
func (s *EnemySpawnSystem) SpawnX() float64 {
	gs := s.gameState
	half := (gs.ViewportWidth - gs.Config.Enemy.SpawnBuffer) / 2
	if half <= 0 {
		return 0
	}
	return -half + gs.RNG.Float64()*2*half
}

func (s *EnemySpawnSystem) spawn() error {
	_, player, _, err := entities.FindPlayer(s.entityManager)
	if err != nil {
		return err
	}

	gs := s.gameState
	ec := gs.Config.Enemy
	pos := utils.Vec2{X: s.SpawnX(), Y: ec.SpawnY}
	target := utils.Vec2{X: player.CachedX, Y: player.CachedY + ec.TargetOffsetY}

	id, err := entities.NewEnemy(s.entityManager, entities.EnemySpawn{
		Position:   pos,
		Target:     target,
		Speed:      gs.Wave.EnemySpeed,
		Health:     gs.Wave.EnemyHealth,
		Level:      gs.Wave.Level,
		HalfWidth:  ec.HalfWidth,
		HalfHeight: ec.HalfHeight,
	})
	if err != nil {
		return err
	}

	log.Printf("[EnemySpawnSystem] Spawned enemy %d at (%.1f, %.1f), %d/%d for level %d",
		id, pos.X, pos.Y, gs.Wave.Spawned+1, gs.Wave.TotalEnemies, gs.Wave.Level)
	gs.Log.Add(gs.Tick, game.LogCategorySpawn, "enemy_spawned",
		fmt.Sprintf("enemy %d at x=%.1f (level %d)", id, pos.X, gs.Wave.Level), pos.X)
	return nil
}
