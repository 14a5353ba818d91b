package systems

import (
	"fmt"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/ecs"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/entities"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/game"
)

// recycleShot gives the player one shot back when a projectile despawns and
// shot recycling is enabled. The shot limit never exceeds MaxShots.
func recycleShot(em *ecs.EntityManager, gs *game.GameState) error {
	if !gs.Config.Simulation.RecycleShots {
		return nil
	}
	_, player, _, err := entities.FindPlayer(em)
	if err != nil {
		return fmt.Errorf("recycle shot: %w", err)
	}
	player.RestoreShot()
	return nil
}
