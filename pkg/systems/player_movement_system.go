package systems

import (
	"fmt"
	"math"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/ecs"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/entities"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/game"
)

// PlayerMovementSystem moves the player sideways with the mouse wheel and
// refreshes the player's cached position.
//
//	x += wheel * speed * deltaTime * timeScale
//
// The player only moves while inside the viewport, and the result is clamped
// to the viewport edges.
type PlayerMovementSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewPlayerMovementSystem creates a player movement system.
func NewPlayerMovementSystem(em *ecs.EntityManager, gs *game.GameState) *PlayerMovementSystem {
	return &PlayerMovementSystem{entityManager: em, gameState: gs}
}

// Update moves the player.
func (s *PlayerMovementSystem) Update(deltaTime float64) error {
	_, player, transform, err := entities.FindPlayer(s.entityManager)
	if err != nil {
		return fmt.Errorf("player movement: %w", err)
	}

	gs := s.gameState
	halfW, _ := gs.HalfExtents()
	wheel := gs.Input.WheelDelta

	if wheel != 0 && !math.IsNaN(wheel) && !math.IsInf(wheel, 0) &&
		transform.X >= -halfW && transform.X <= halfW {
		transform.X += wheel * player.MovementSpeed * deltaTime * gs.TimeScale
		transform.X = math.Max(-halfW, math.Min(halfW, transform.X))
	}

	player.CachedX = transform.X
	player.CachedY = transform.Y
	return nil
}
