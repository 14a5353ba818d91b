package components

import (
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/types"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"
)

// EnemyComponent holds the movement state of a wave enemy.
type EnemyComponent struct {
	MovementSpeed float64          // world units per second
	Direction     utils.Vec2       // unit approach direction chosen at spawn
	Phase         types.EnemyPhase // Seeking until the descend line is crossed
	Level         int              // level the enemy was spawned in
}
