package components

// TransformComponent is the position and orientation shared by every simulated
// entity. Coordinates are world units: origin at the viewport center, +Y up.
type TransformComponent struct {
	X        float64 // world X
	Y        float64 // world Y
	Rotation float64 // radians, counter-clockwise from +X
	ScaleX   float64 // visual scale, used only by renderers
	ScaleY   float64
}
