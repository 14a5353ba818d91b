package entities

import (
	"errors"
	"fmt"
	"log"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/components"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/config"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/ecs"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/types"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"
)

// ErrPlayerMissing is returned when a system needs the player and none exists.
// The player lives for the whole session, so this is a programming error.
var ErrPlayerMissing = errors.New("player entity not found")

// NewPlayer creates the player ship at the configured spawn point.
//
// The shot cooldown starts finished so the first shot is not delayed.
func NewPlayer(em *ecs.EntityManager, cfg config.PlayerConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg.ShotLimit < 0 {
		return 0, fmt.Errorf("shot limit cannot be negative, got %d", cfg.ShotLimit)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.TransformComponent{
		X:      cfg.SpawnX,
		Y:      cfg.SpawnY,
		ScaleX: 1,
		ScaleY: 1,
	})
	ecs.AddComponent(em, entityID, &components.PlayerComponent{
		MovementSpeed: cfg.MovementSpeed,
		ShotCooldown:  utils.NewFinishedTimer(cfg.ShotCooldown),
		ShotLimit:     cfg.ShotLimit,
		MaxShots:      cfg.ShotLimit,
		CachedX:       cfg.SpawnX,
		CachedY:       cfg.SpawnY,
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		HalfWidth:  cfg.HalfWidth,
		HalfHeight: cfg.HalfHeight,
	})
	ecs.AddComponent(em, entityID, &components.KindComponent{Kind: types.KindPlayer})

	log.Printf("[PlayerFactory] Created player %d at (%.1f, %.1f), shots=%d", entityID, cfg.SpawnX, cfg.SpawnY, cfg.ShotLimit)
	return entityID, nil
}

// FindPlayer returns the player entity with its player and transform components.
// If several exist the lowest ID wins.
func FindPlayer(em *ecs.EntityManager) (ecs.EntityID, *components.PlayerComponent, *components.TransformComponent, error) {
	ids := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.TransformComponent](em)
	if len(ids) == 0 {
		return 0, nil, nil, ErrPlayerMissing
	}
	id := ids[0]
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	return id, player, transform, nil
}
