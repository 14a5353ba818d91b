package entities

import (
	"fmt"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/components"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/ecs"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/types"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"
)

// ProjectileSpawn describes a new projectile.
type ProjectileSpawn struct {
	Origin     utils.Vec2
	Direction  utils.Vec2 // need not be normalized
	Speed      float64
	HalfWidth  float64
	HalfHeight float64
}

// NewProjectile creates a projectile moving along spawn.Direction.
//
// A non-finite origin or direction is rejected. A zero-length direction
// falls back to straight up. The stored direction is a unit vector that
// never changes afterwards.
func NewProjectile(em *ecs.EntityManager, spawn ProjectileSpawn) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if !spawn.Origin.IsFinite() {
		return 0, fmt.Errorf("projectile origin is not finite: %v", spawn.Origin)
	}
	if !spawn.Direction.IsFinite() {
		return 0, fmt.Errorf("projectile direction is not finite: %v", spawn.Direction)
	}

	direction, ok := spawn.Direction.Normalize()
	if !ok {
		direction = utils.Up
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.TransformComponent{
		X:        spawn.Origin.X,
		Y:        spawn.Origin.Y,
		Rotation: direction.Angle(),
		ScaleX:   1,
		ScaleY:   1,
	})
	ecs.AddComponent(em, entityID, components.NewProjectileComponent(direction, spawn.Speed))
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		HalfWidth:  spawn.HalfWidth,
		HalfHeight: spawn.HalfHeight,
	})
	ecs.AddComponent(em, entityID, &components.KindComponent{Kind: types.KindProjectile})

	return entityID, nil
}
