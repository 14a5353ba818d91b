package types

// WavePhase is the state of the wave director.
type WavePhase int

const (
	// WaveActive means enemies of the current level remain alive (curr > 0).
	WaveActive WavePhase = iota
	// WaveClearing means the wave is cleared and the transition timer is running.
	WaveClearing
)

// String returns the name of the phase.
func (p WavePhase) String() string {
	switch p {
	case WaveActive:
		return "Active"
	case WaveClearing:
		return "Clearing"
	default:
		return "Unknown"
	}
}

// EnemyPhase is the movement phase of a single enemy.
type EnemyPhase int

const (
	// EnemySeeking weaves along the approach direction.
	EnemySeeking EnemyPhase = iota
	// EnemyDescending moves straight down. Once entered it is never left.
	EnemyDescending
)

// String returns the name of the phase.
func (p EnemyPhase) String() string {
	if p == EnemyDescending {
		return "Descending"
	}
	return "Seeking"
}
