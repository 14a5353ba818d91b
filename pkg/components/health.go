package components

// HealthComponent stores hit points of a damageable entity.
// An entity whose CurrentHealth reaches 0 is destroyed in the same step.
type HealthComponent struct {
	CurrentHealth int // remaining hit points, >= 1 while alive
	MaxHealth     int // hit points at spawn
}
