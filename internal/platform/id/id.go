package id

import (
	"sync"

	"github.com/shivam2408/Self-Mediation-App/internal/platform/clock"
)

// Sequence issues unique int64 identifiers.
type Sequence interface {
	Next() int64
}

// MonotonicMillis derives identifiers from the wall clock in Unix
// milliseconds. When the clock has not advanced past the last issued value
// (or has stepped backwards), the value is bumped by one instead, so ids
// stay strictly increasing even for callers faster than the clock tick.
type MonotonicMillis struct {
	clock clock.Clock

	mu   sync.Mutex
	last int64
}

func NewMonotonicMillis(clk clock.Clock) *MonotonicMillis {
	return &MonotonicMillis{clock: clk}
}

func (m *MonotonicMillis) Next() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.clock.Now().UnixMilli()
	if v <= m.last {
		v = m.last + 1
	}
	m.last = v
	return v
}
