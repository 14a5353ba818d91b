package systems

import (
	"fmt"
	"log"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/components"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/ecs"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/entities"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/game"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"
)

// PlayerFireSystem spawns projectiles while the fire button is held.
//
// A shot needs a finished cooldown and a non-empty shot budget. Projectiles
// leave from the top edge of the player and head for the cursor.
type PlayerFireSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewPlayerFireSystem creates a player fire system.
func NewPlayerFireSystem(em *ecs.EntityManager, gs *game.GameState) *PlayerFireSystem {
	return &PlayerFireSystem{entityManager: em, gameState: gs}
}

// Update ticks the cooldown and fires when possible.
func (s *PlayerFireSystem) Update(deltaTime float64) error {
	playerID, player, transform, err := entities.FindPlayer(s.entityManager)
	if err != nil {
		return fmt.Errorf("player fire: %w", err)
	}

	player.ShotCooldown.Tick(deltaTime)

	gs := s.gameState
	if !gs.Input.FirePressed || !player.ShotCooldown.Finished() || player.ShotLimit <= 0 {
		return nil
	}

	halfHeight := 0.0
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, playerID); ok {
		halfHeight = col.HalfHeight
	}
	origin := utils.Vec2{X: transform.X, Y: transform.Y + halfHeight}

	pc := gs.Config.Projectile
	projectileID, err := entities.NewProjectile(s.entityManager, entities.ProjectileSpawn{
		Origin:     origin,
		Direction:  gs.Cursor.Sub(origin),
		Speed:      pc.Speed,
		HalfWidth:  pc.HalfWidth,
		HalfHeight: pc.HalfHeight,
	})
	if err != nil {
		log.Printf("[PlayerFireSystem] Shot skipped: %v", err)
		return nil
	}

	player.ConsumeShot()
	player.ShotCooldown.Reset()
	gs.ShotsFired++
	gs.Log.AddVerbose(gs.Tick, game.LogCategoryPlayer, "fire",
		fmt.Sprintf("projectile %d aimed at (%.0f, %.0f), %d shots left", projectileID, gs.Cursor.X, gs.Cursor.Y, player.ShotLimit),
		float64(player.ShotLimit))
	return nil
}
