package domain

import "time"

// MinTailGapMs is the smallest still-open gap worth keeping when a sitting
// ends. Anything at or below it is treated as the reflex of reaching for the
// end key, not a real stretch of stillness.
const MinTailGapMs = 500

// dateISOMillis renders session timestamps the way they are persisted:
// RFC 3339 in UTC with millisecond precision.
const dateISOMillis = "2006-01-02T15:04:05.000Z07:00"

// Phase is where the engine is in the sitting lifecycle.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
	PhasePaused  Phase = "paused"
)

// Interval is one closed gap between consecutive thought signals (the first
// one runs from the start of the sitting). Immutable once closed.
type Interval struct {
	ID          int
	DurationMs  int64
	TimestampMs int64
}

// Snapshot is the live view of an in-flight sitting, for rendering only.
type Snapshot struct {
	Phase        Phase
	ElapsedMs    int64
	ThoughtCount int
	LastGapMs    int64
	StartedAtMs  int64
}

// Summary is the frozen record of one completed sitting, ready for the
// archive.
type Summary struct {
	ID              int64
	DateISO         string
	Intervals       []Interval
	TotalDurationMs int64
	ThoughtCount    int
	LongestGapMs    int64
	AvgGapMs        float64
}

// Finalize folds the still-open gap into the closed list when it is longer
// than MinTailGapMs, then freezes the sitting into a Summary. A sitting that
// produced no qualifying intervals reports ok=false and leaves no trace.
//
// Total duration is wall-clock time between start and end, so it includes
// paused stretches even though the per-interval durations never do.
func Finalize(closed []Interval, openElapsedMs int64, startedAt, endedAt time.Time, nextID func() int64) (Summary, bool) {
	intervals := make([]Interval, len(closed), len(closed)+1)
	copy(intervals, closed)
	if openElapsedMs > MinTailGapMs {
		intervals = append(intervals, Interval{
			ID:          len(intervals) + 1,
			DurationMs:  openElapsedMs,
			TimestampMs: endedAt.UnixMilli(),
		})
	}
	if len(intervals) == 0 {
		return Summary{}, false
	}

	var longest, sum int64
	for _, iv := range intervals {
		sum += iv.DurationMs
		if iv.DurationMs > longest {
			longest = iv.DurationMs
		}
	}
	return Summary{
		ID:              nextID(),
		DateISO:         endedAt.UTC().Format(dateISOMillis),
		Intervals:       intervals,
		TotalDurationMs: endedAt.Sub(startedAt).Milliseconds(),
		ThoughtCount:    len(intervals),
		LongestGapMs:    longest,
		AvgGapMs:        float64(sum) / float64(len(intervals)),
	}, true
}
