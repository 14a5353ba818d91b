package components

import "github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"

// PlayerComponent holds the state of the single player ship.
//
// ShotLimit counts how many more projectiles may be in flight at once.
// It stays within [0, MaxShots].
type PlayerComponent struct {
	MovementSpeed float64     // lateral speed (world units per second per wheel unit)
	ShotCooldown  utils.Timer // minimum delay between two shots
	ShotLimit     int         // remaining concurrent shots
	MaxShots      int         // upper bound of ShotLimit

	// CachedX/CachedY mirror the transform so spawners can aim without a
	// transform lookup.
	CachedX float64
	CachedY float64
}

// ConsumeShot takes one shot from the budget. It returns false when empty.
func (p *PlayerComponent) ConsumeShot() bool {
	if p.ShotLimit <= 0 {
		return false
	}
	p.ShotLimit--
	return true
}

// RestoreShot gives one shot back, never exceeding MaxShots.
// It returns false when the budget was already full.
func (p *PlayerComponent) RestoreShot() bool {
	if p.ShotLimit >= p.MaxShots {
		return false
	}
	p.ShotLimit++
	return true
}
