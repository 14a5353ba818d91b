package scenes

import (
	"fmt"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/types"
)

// HUD holds the values shown as on-screen text.
type HUD struct {
	Level        int
	TotalEnemies int
	TimeScale    float64

	Remaining int // EnemyCount.Curr
	ShotLimit int
	MaxShots  int
	Kills     int
	Escaped   int
	Phase     types.WavePhase
}

// Lines formats the HUD for display, one value per line.
func (h HUD) Lines() []string {
	return []string{
		fmt.Sprintf("Level: %d", h.Level),
		fmt.Sprintf("Enemies: %d", h.TotalEnemies),
		fmt.Sprintf("Timescale: %.1f", h.TimeScale),
		fmt.Sprintf("Remaining: %d", h.Remaining),
		fmt.Sprintf("Shots: %d/%d", h.ShotLimit, h.MaxShots),
		fmt.Sprintf("Kills: %d  Escaped: %d", h.Kills, h.Escaped),
	}
}
