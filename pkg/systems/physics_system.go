package systems

import (
	"fmt"
	"log"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/components"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/ecs"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/game"
)

// PhysicsSystem resolves projectile-enemy collisions.
//
// Every projectile is tested against every enemy, both in ascending entity-ID
// order, so "first match" is deterministic. A projectile hits at most one
// enemy per tick and is destroyed on contact. An enemy destroyed earlier in
// the same tick is skipped.
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewPhysicsSystem creates a physics system.
func NewPhysicsSystem(em *ecs.EntityManager, gs *game.GameState) *PhysicsSystem {
	return &PhysicsSystem{entityManager: em, gameState: gs}
}

// checkAABBCollision reports whether two boxes centered on their transforms
// overlap. Boxes that only touch count as overlapping.
func checkAABBCollision(
	pos1 *components.TransformComponent, col1 *components.CollisionComponent,
	pos2 *components.TransformComponent, col2 *components.CollisionComponent) bool {

	left1 := pos1.X - col1.HalfWidth
	right1 := pos1.X + col1.HalfWidth
	bottom1 := pos1.Y - col1.HalfHeight
	top1 := pos1.Y + col1.HalfHeight

	left2 := pos2.X - col2.HalfWidth
	right2 := pos2.X + col2.HalfWidth
	bottom2 := pos2.Y - col2.HalfHeight
	top2 := pos2.Y + col2.HalfHeight

	// no overlap on either axis means no collision
	return right1 >= left2 &&
		left1 <= right2 &&
		top1 >= bottom2 &&
		bottom1 <= top2
}

// Update runs collision detection and applies damage.
func (ps *PhysicsSystem) Update(deltaTime float64) error {
	em := ps.entityManager
	gs := ps.gameState

	projectiles := ecs.GetEntitiesWith3[
		*components.ProjectileComponent,
		*components.TransformComponent,
		*components.CollisionComponent,
	](em)
	enemies := ecs.GetEntitiesWith4[
		*components.EnemyComponent,
		*components.HealthComponent,
		*components.TransformComponent,
		*components.CollisionComponent,
	](em)

	for _, projectileID := range projectiles {
		projPos, _ := ecs.GetComponent[*components.TransformComponent](em, projectileID)
		projCol, _ := ecs.GetComponent[*components.CollisionComponent](em, projectileID)

		for _, enemyID := range enemies {
			if !em.IsAlive(enemyID) {
				continue
			}
			enemyPos, _ := ecs.GetComponent[*components.TransformComponent](em, enemyID)
			enemyCol, _ := ecs.GetComponent[*components.CollisionComponent](em, enemyID)

			if !checkAABBCollision(projPos, projCol, enemyPos, enemyCol) {
				continue
			}

			em.DestroyEntity(projectileID)
			if err := recycleShot(em, gs); err != nil {
				return fmt.Errorf("physics: %w", err)
			}

			health, _ := ecs.GetComponent[*components.HealthComponent](em, enemyID)
			health.CurrentHealth--
			if health.CurrentHealth <= 0 {
				em.DestroyEntity(enemyID)
				gs.RecordKill()
				log.Printf("[PhysicsSystem] Enemy %d destroyed by projectile %d, %d remaining", enemyID, projectileID, gs.Enemies.Curr)
				gs.Log.Add(gs.Tick, game.LogCategoryCombat, "kill",
					fmt.Sprintf("enemy %d destroyed, %d remaining", enemyID, gs.Enemies.Curr), float64(gs.Enemies.Curr))
			} else {
				gs.Log.AddVerbose(gs.Tick, game.LogCategoryCombat, "hit",
					fmt.Sprintf("enemy %d health %d", enemyID, health.CurrentHealth), float64(health.CurrentHealth))
			}

			// one projectile hits one enemy
			break
		}
	}

	return nil
}
