package ecs

// Timer is a repeating timer counting elapsed seconds against a duration.
type Timer struct {
	Duration float64

	elapsed      float64
	justFinished bool
}

// NewTimer creates a repeating timer of the given duration in seconds.
func NewTimer(duration float64) *Timer {
	if duration <= 0 {
		panic("timer duration must be positive")
	}
	return &Timer{Duration: duration}
}

// Tick advances the timer by dt seconds and reports whether it finished
// during this tick. It reports at most one completion per tick even if dt
// spans several durations; the remainder carries over.
func (t *Timer) Tick(dt float64) bool {
	t.justFinished = false

	t.elapsed += dt
	if t.elapsed < t.Duration {
		return false
	}

	for t.elapsed >= t.Duration {
		t.elapsed -= t.Duration
	}
	t.justFinished = true
	return true
}

// JustFinished reports whether the last Tick completed the timer.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Elapsed returns the seconds accumulated towards the next completion.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Reset rewinds the timer to zero.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.justFinished = false
}
