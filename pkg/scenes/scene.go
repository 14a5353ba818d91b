package scenes

import (
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/ecs"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/game"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/types"
)

// Scene is a simulation screen driven by the ebiten adapter or the headless
// runner. It has no rendering dependency; callers draw from Snapshot and HUD.
type Scene interface {
	// Update runs one tick. A non-nil error means an invariant was broken
	// and the scene must not be ticked again.
	Update(in game.FrameInput) error
	Snapshot() []EntityView
	HUD() HUD
}

// EntityView is the render-facing view of one live entity.
type EntityView struct {
	ID         ecs.EntityID
	Kind       types.EntityKind
	X, Y       float64 // world coordinates
	Rotation   float64 // radians
	HalfWidth  float64
	HalfHeight float64
}
