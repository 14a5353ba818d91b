// Package utils holds small math helpers shared by the simulation and the
// ebiten adapter.
//
// coordinates.go converts between the two coordinate systems in use:
//   - world: origin at the center of the viewport, +Y pointing up (entity transforms)
//   - screen: origin at the top-left corner, +Y pointing down (ebiten)
//
// Conversion for a viewport of size (w, h):
//
//	screenX = worldX + w/2
//	screenY = h/2 - worldY
package utils

// WorldToScreen converts a world position to screen pixels.
func WorldToScreen(world Vec2, viewportWidth, viewportHeight float64) (float64, float64) {
	return world.X + viewportWidth/2, viewportHeight/2 - world.Y
}

// ScreenToWorld converts screen pixels to a world position.
func ScreenToWorld(screenX, screenY, viewportWidth, viewportHeight float64) Vec2 {
	return Vec2{
		X: screenX - viewportWidth/2,
		Y: viewportHeight/2 - screenY,
	}
}

// InsideHalfExtents reports whether p lies inside the centered rectangle
// [-halfW, halfW] x [-halfH, halfH]. Points on the edge are inside.
func InsideHalfExtents(p Vec2, halfW, halfH float64) bool {
	return p.X >= -halfW && p.X <= halfW && p.Y >= -halfH && p.Y <= halfH
}
