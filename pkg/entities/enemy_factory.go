package entities

import (
	"fmt"
	"log"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/components"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/ecs"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/types"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"
)

// EnemySpawn describes a new enemy.
type EnemySpawn struct {
	Position   utils.Vec2 // spawn point
	Target     utils.Vec2 // point the enemy initially heads for
	Speed      float64
	Health     int
	Level      int
	HalfWidth  float64
	HalfHeight float64
}

// NewEnemy creates an enemy heading from spawn.Position toward spawn.Target.
//
// When the two points coincide, or the geometry is not finite, the direction
// falls back to straight down.
func NewEnemy(em *ecs.EntityManager, spawn EnemySpawn) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spawn.Health < 1 {
		return 0, fmt.Errorf("enemy health must be at least 1, got %d", spawn.Health)
	}
	if !spawn.Position.IsFinite() {
		return 0, fmt.Errorf("enemy spawn position is not finite: %v", spawn.Position)
	}

	direction, ok := spawn.Target.Sub(spawn.Position).Normalize()
	if !ok {
		log.Printf("[EnemyFactory] Degenerate approach from %v to %v, falling back to straight down", spawn.Position, spawn.Target)
		direction = utils.Down
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.TransformComponent{
		X:      spawn.Position.X,
		Y:      spawn.Position.Y,
		ScaleX: 1,
		ScaleY: 1,
	})
	ecs.AddComponent(em, entityID, &components.EnemyComponent{
		MovementSpeed: spawn.Speed,
		Direction:     direction,
		Phase:         types.EnemySeeking,
		Level:         spawn.Level,
	})
	ecs.AddComponent(em, entityID, &components.HealthComponent{
		CurrentHealth: spawn.Health,
		MaxHealth:     spawn.Health,
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		HalfWidth:  spawn.HalfWidth,
		HalfHeight: spawn.HalfHeight,
	})
	ecs.AddComponent(em, entityID, &components.KindComponent{Kind: types.KindEnemy})

	return entityID, nil
}
