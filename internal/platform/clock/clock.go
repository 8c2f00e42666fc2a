package clock

import "time"

// Clock abstracts wall-clock reads so timing logic stays deterministic in
// tests. Every duration the engine reports is derived from deltas between
// Now values, never from a free-running timer.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
