package service

import (
	"context"
	"sync"
	"time"

	"github.com/shivam2408/Self-Mediation-App/internal/modules/session/domain"
	"github.com/shivam2408/Self-Mediation-App/internal/platform/clock"
	"github.com/shivam2408/Self-Mediation-App/internal/platform/id"
)

// SessionService is the single writer of live sitting state. Every mutation
// runs under one mutex, so intents arriving from the UI loop and ticks
// arriving from the timer are applied strictly in arrival order.
//
// Elapsed time accumulates as real deltas between tick observations, not as
// fixed increments, so a congested timer drifts the display but never the
// recorded durations.
type SessionService struct {
	clock clock.Clock
	ids   id.Sequence

	mu          sync.Mutex
	phase       domain.Phase
	startedAt   time.Time
	lastTickAt  time.Time
	openElapsed time.Duration
	closed      []domain.Interval
}

func NewSessionService(clk clock.Clock, ids id.Sequence) *SessionService {
	return &SessionService{clock: clk, ids: ids, phase: domain.PhaseIdle}
}

// Start begins a fresh sitting. A start while one is already in flight is
// ignored.
func (s *SessionService) Start(_ context.Context) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseIdle {
		return s.snapshotLocked()
	}
	now := s.clock.Now()
	s.phase = domain.PhaseRunning
	s.startedAt = now
	s.lastTickAt = now
	s.openElapsed = 0
	s.closed = nil
	return s.snapshotLocked()
}

// Tick advances the open gap by the wall-clock delta since the previous
// observation. Ticks landing while paused or idle change nothing, which is
// what makes a stray timer fire after end() harmless.
func (s *SessionService) Tick(_ context.Context) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == domain.PhaseRunning {
		now := s.clock.Now()
		s.openElapsed += now.Sub(s.lastTickAt)
		s.lastTickAt = now
	}
	return s.snapshotLocked()
}

// RecordThought closes the open gap as an interval and starts the next one
// at zero. The closed interval is returned so the caller can feed the
// personal-best tracker. Outside of the running phase nothing happens.
func (s *SessionService) RecordThought(_ context.Context) (domain.Interval, domain.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseRunning {
		return domain.Interval{}, s.snapshotLocked(), false
	}
	now := s.clock.Now()
	iv := domain.Interval{
		ID:          len(s.closed) + 1,
		DurationMs:  s.openElapsed.Milliseconds(),
		TimestampMs: now.UnixMilli(),
	}
	s.closed = append(s.closed, iv)
	s.openElapsed = 0
	// Re-anchor so time between the signal and the next tick lands in the
	// new gap, not the one just closed.
	s.lastTickAt = now
	return iv, s.snapshotLocked(), true
}

// TogglePause freezes or resumes gap accumulation. The elapsed counter holds
// its value across the pause; resuming re-anchors the tick origin so none of
// the paused wall-clock time leaks into the open gap.
func (s *SessionService) TogglePause(_ context.Context) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.phase {
	case domain.PhaseRunning:
		s.phase = domain.PhasePaused
	case domain.PhasePaused:
		s.lastTickAt = s.clock.Now()
		s.phase = domain.PhaseRunning
	}
	return s.snapshotLocked()
}

// End freezes the sitting into a summary and resets to idle. The tail return
// is the synthetic interval created from the open gap, when one qualified;
// the caller owes it a personal-best check like any other closed interval.
// ok is false when there was no sitting or it left nothing worth keeping.
func (s *SessionService) End(_ context.Context) (domain.Summary, *domain.Interval, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == domain.PhaseIdle {
		return domain.Summary{}, nil, false
	}
	now := s.clock.Now()
	closedCount := len(s.closed)
	summary, ok := domain.Finalize(s.closed, s.openElapsed.Milliseconds(), s.startedAt, now, s.ids.Next)

	s.phase = domain.PhaseIdle
	s.startedAt = time.Time{}
	s.lastTickAt = time.Time{}
	s.openElapsed = 0
	s.closed = nil

	if !ok {
		return domain.Summary{}, nil, false
	}
	var tail *domain.Interval
	if len(summary.Intervals) > closedCount {
		t := summary.Intervals[len(summary.Intervals)-1]
		tail = &t
	}
	return summary, tail, true
}

func (s *SessionService) Snapshot(_ context.Context) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *SessionService) snapshotLocked() domain.Snapshot {
	snap := domain.Snapshot{
		Phase:        s.phase,
		ElapsedMs:    s.openElapsed.Milliseconds(),
		ThoughtCount: len(s.closed),
	}
	if !s.startedAt.IsZero() {
		snap.StartedAtMs = s.startedAt.UnixMilli()
	}
	if n := len(s.closed); n > 0 {
		snap.LastGapMs = s.closed[n-1].DurationMs
	}
	return snap
}
