package systems

import (
	"fmt"
	"log"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/components"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/ecs"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/game"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"
)

// BoundsSystem removes projectiles that left the viewport and, when enabled,
// enemies that escaped through the bottom edge.
//
// Each removal happens once: reaping an entity that is already marked or
// removed does nothing.
type BoundsSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewBoundsSystem creates a bounds system.
func NewBoundsSystem(em *ecs.EntityManager, gs *game.GameState) *BoundsSystem {
	return &BoundsSystem{entityManager: em, gameState: gs}
}

// Update reaps out-of-bounds entities.
func (s *BoundsSystem) Update(deltaTime float64) error {
	em := s.entityManager
	halfW, halfH := s.gameState.HalfExtents()

	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.TransformComponent](em) {
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		if utils.InsideHalfExtents(utils.Vec2{X: transform.X, Y: transform.Y}, halfW, halfH) {
			continue
		}
		if _, err := s.ReapProjectile(id); err != nil {
			return err
		}
	}

	if !s.gameState.Config.Enemy.ReapEscaped {
		return nil
	}
	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.TransformComponent, *components.CollisionComponent](em) {
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		if transform.Y >= -halfH-col.HalfHeight {
			continue
		}
		s.ReapEscapedEnemy(id)
	}

	return nil
}

// ReapProjectile destroys a projectile and recycles its shot. It reports
// whether the projectile was removed by this call.
func (s *BoundsSystem) ReapProjectile(id ecs.EntityID) (bool, error) {
	if !s.entityManager.DestroyEntity(id) {
		return false, nil
	}
	if err := recycleShot(s.entityManager, s.gameState); err != nil {
		return true, fmt.Errorf("bounds: %w", err)
	}
	gs := s.gameState
	gs.Log.AddVerbose(gs.Tick, game.LogCategoryBounds, "projectile_reaped", fmt.Sprintf("projectile %d", id), 0)
	return true, nil
}

// ReapEscapedEnemy destroys an enemy that left the play area and counts it as
// escaped. It reports whether the enemy was removed by this call.
func (s *BoundsSystem) ReapEscapedEnemy(id ecs.EntityID) bool {
	if !s.entityManager.DestroyEntity(id) {
		return false
	}
	gs := s.gameState
	gs.RecordEscape()
	log.Printf("[BoundsSystem] Enemy %d escaped, %d remaining", id, gs.Enemies.Curr)
	gs.Log.Add(gs.Tick, game.LogCategoryBounds, "enemy_escaped",
		fmt.Sprintf("enemy %d escaped, %d remaining", id, gs.Enemies.Curr), float64(gs.Enemies.Curr))
	return true
}
