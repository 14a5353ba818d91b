package components

import "github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/types"

// KindComponent tags an entity with its kind for snapshots and debugging.
type KindComponent struct {
	Kind types.EntityKind
}
