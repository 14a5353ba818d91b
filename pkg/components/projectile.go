package components

import "github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"

// ProjectileComponent holds a player shot's flight data.
// The direction is fixed when the projectile is created and has no setter.
type ProjectileComponent struct {
	direction utils.Vec2
	Speed     float64 // world units per second
}

// NewProjectileComponent creates a projectile with a fixed unit direction.
func NewProjectileComponent(direction utils.Vec2, speed float64) *ProjectileComponent {
	return &ProjectileComponent{direction: direction, Speed: speed}
}

// Direction returns the travel direction.
func (p *ProjectileComponent) Direction() utils.Vec2 {
	return p.direction
}
