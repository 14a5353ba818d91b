// Package types defines shared base types.
// It depends on no other business package, which keeps the import graph acyclic.
package types

// EntityKind identifies which of the three simulated entity kinds an entity is.
type EntityKind int

const (
	// KindUnknown is the zero value.
	KindUnknown EntityKind = iota
	// KindPlayer is the single player ship.
	KindPlayer
	// KindEnemy is a wave enemy.
	KindEnemy
	// KindProjectile is a player shot.
	KindProjectile
)

// String returns the name of the kind.
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindProjectile:
		return "Projectile"
	default:
		return "Unknown"
	}
}
