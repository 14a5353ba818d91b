package utils

// TimerMode controls what a Timer does once its duration elapses.
type TimerMode int

const (
	// TimerOnce stays finished until Reset.
	TimerOnce TimerMode = iota
	// TimerRepeating wraps around and reports JustFinished on every lap.
	TimerRepeating
)

// Timer is a countdown clock advanced by elapsed time (seconds).
//
// A Once timer keeps Finished() == true after completion until Reset is called.
// A paused timer ignores Tick but keeps its finished state, so a timer that
// already finished still reports Finished() while paused.
type Timer struct {
	duration     float64
	elapsed      float64
	mode         TimerMode
	paused       bool
	finished     bool
	justFinished bool
}

// NewTimer creates a stopped-at-zero timer. A non-positive duration yields a
// timer that is finished from the start.
func NewTimer(durationSeconds float64, mode TimerMode) Timer {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	return Timer{
		duration: durationSeconds,
		mode:     mode,
		finished: durationSeconds == 0,
	}
}

// NewFinishedTimer creates a Once timer that already reports Finished.
func NewFinishedTimer(durationSeconds float64) Timer {
	t := NewTimer(durationSeconds, TimerOnce)
	t.elapsed = t.duration
	t.finished = true
	return t
}

// Tick advances the timer by deltaTime seconds.
func (t *Timer) Tick(deltaTime float64) {
	t.justFinished = false
	if t.paused || deltaTime <= 0 {
		return
	}

	switch t.mode {
	case TimerRepeating:
		if t.duration == 0 {
			t.finished = true
			t.justFinished = true
			return
		}
		t.elapsed += deltaTime
		t.finished = false
		for t.elapsed >= t.duration {
			t.elapsed -= t.duration
			t.finished = true
			t.justFinished = true
		}
	default:
		if t.finished {
			return
		}
		t.elapsed += deltaTime
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.justFinished = true
		}
	}
}

// Reset rewinds the timer to zero. The paused state is kept.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = t.duration == 0
	t.justFinished = false
}

// Pause freezes the timer.
func (t *Timer) Pause() { t.paused = true }

// Unpause resumes ticking.
func (t *Timer) Unpause() { t.paused = false }

// IsPaused reports whether Tick is currently ignored.
func (t *Timer) IsPaused() bool { return t.paused }

// Finished reports whether the duration has elapsed.
func (t *Timer) Finished() bool { return t.finished }

// JustFinished reports whether the last Tick completed the timer.
func (t *Timer) JustFinished() bool { return t.justFinished }

// Elapsed returns the time accumulated in the current lap.
func (t *Timer) Elapsed() float64 { return t.elapsed }

// Duration returns the configured duration in seconds.
func (t *Timer) Duration() float64 { return t.duration }

// Remaining returns the seconds left until the timer finishes.
func (t *Timer) Remaining() float64 {
	if t.finished && t.mode == TimerOnce {
		return 0
	}
	return t.duration - t.elapsed
}

// SetDuration changes the duration without touching the elapsed time.
func (t *Timer) SetDuration(durationSeconds float64) {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	t.duration = durationSeconds
	if t.mode == TimerOnce && t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.finished = true
	}
}
