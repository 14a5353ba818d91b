package components

// CollisionComponent is an axis-aligned bounding box centered on the entity's
// transform. Edges that touch count as overlapping.
type CollisionComponent struct {
	HalfWidth  float64 // half of the box width (world units)
	HalfHeight float64 // half of the box height (world units)
}
