package utils

import (
	"math"
	"testing"
)

func TestWorldScreenRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		world  Vec2
		w, h   float64
		wantSX float64
		wantSY float64
	}{
		{"origin maps to center", Vec2{0, 0}, 1080, 920, 540, 460},
		{"top-left corner", Vec2{-540, 460}, 1080, 920, 0, 0},
		{"player spawn", Vec2{0, -300}, 1080, 920, 540, 760},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := WorldToScreen(tt.world, tt.w, tt.h)
			if math.Abs(sx-tt.wantSX) > 1e-9 || math.Abs(sy-tt.wantSY) > 1e-9 {
				t.Fatalf("WorldToScreen(%v) = (%f, %f), want (%f, %f)", tt.world, sx, sy, tt.wantSX, tt.wantSY)
			}
			back := ScreenToWorld(sx, sy, tt.w, tt.h)
			if math.Abs(back.X-tt.world.X) > 1e-9 || math.Abs(back.Y-tt.world.Y) > 1e-9 {
				t.Errorf("ScreenToWorld round trip = %v, want %v", back, tt.world)
			}
		})
	}
}

func TestInsideHalfExtents(t *testing.T) {
	if !InsideHalfExtents(Vec2{540, -460}, 540, 460) {
		t.Error("Point on the edge should be inside")
	}
	if InsideHalfExtents(Vec2{540.01, 0}, 540, 460) {
		t.Error("Point past the right edge should be outside")
	}
	if InsideHalfExtents(Vec2{0, 461}, 540, 460) {
		t.Error("Point above the top edge should be outside")
	}
}
