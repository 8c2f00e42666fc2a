package domain

import (
	"testing"
	"time"
)

func sequentialIDs(start int64) func() int64 {
	next := start
	return func() int64 {
		v := next
		next++
		return v
	}
}

func TestFinalizeComputesAggregates(t *testing.T) {
	t.Parallel()

	startedAt := time.UnixMilli(10_000).UTC()
	endedAt := time.UnixMilli(12_300).UTC()
	closed := []Interval{
		{ID: 1, DurationMs: 1200, TimestampMs: 11_200},
		{ID: 2, DurationMs: 700, TimestampMs: 11_900},
	}

	// The open 400ms remainder is below the keep threshold.
	summary, ok := Finalize(closed, 400, startedAt, endedAt, sequentialIDs(42))
	if !ok {
		t.Fatal("Finalize rejected a sitting with closed intervals")
	}
	if summary.ID != 42 {
		t.Fatalf("ID = %d, want 42", summary.ID)
	}
	if summary.ThoughtCount != 2 {
		t.Fatalf("ThoughtCount = %d, want 2", summary.ThoughtCount)
	}
	if summary.TotalDurationMs != 2300 {
		t.Fatalf("TotalDurationMs = %d, want 2300", summary.TotalDurationMs)
	}
	if summary.LongestGapMs != 1200 {
		t.Fatalf("LongestGapMs = %d, want 1200", summary.LongestGapMs)
	}
	if summary.AvgGapMs != 950 {
		t.Fatalf("AvgGapMs = %v, want 950", summary.AvgGapMs)
	}
	if len(summary.Intervals) != 2 {
		t.Fatalf("Intervals = %d, want the open remainder dropped", len(summary.Intervals))
	}
}

func TestFinalizeKeepsLongTail(t *testing.T) {
	t.Parallel()

	startedAt := time.UnixMilli(0).UTC()
	endedAt := time.UnixMilli(5_000).UTC()
	closed := []Interval{{ID: 1, DurationMs: 3000, TimestampMs: 3_000}}

	summary, ok := Finalize(closed, 1500, startedAt, endedAt, sequentialIDs(1))
	if !ok {
		t.Fatal("Finalize rejected the sitting")
	}
	if summary.ThoughtCount != 2 {
		t.Fatalf("ThoughtCount = %d, want the tail folded in", summary.ThoughtCount)
	}
	tail := summary.Intervals[len(summary.Intervals)-1]
	if tail.ID != 2 || tail.DurationMs != 1500 || tail.TimestampMs != 5_000 {
		t.Fatalf("tail = %+v", tail)
	}
	if summary.LongestGapMs != 3000 {
		t.Fatalf("LongestGapMs = %d, want 3000", summary.LongestGapMs)
	}
	if summary.AvgGapMs != 2250 {
		t.Fatalf("AvgGapMs = %v, want 2250", summary.AvgGapMs)
	}
}

func TestFinalizeTailThreshold(t *testing.T) {
	t.Parallel()

	startedAt := time.UnixMilli(0).UTC()
	endedAt := time.UnixMilli(1_000).UTC()

	// Exactly at the threshold leaves no trace.
	if _, ok := Finalize(nil, MinTailGapMs, startedAt, endedAt, sequentialIDs(1)); ok {
		t.Fatal("a tail of exactly the threshold should be dropped")
	}
	// One millisecond over survives.
	summary, ok := Finalize(nil, MinTailGapMs+1, startedAt, endedAt, sequentialIDs(1))
	if !ok {
		t.Fatal("a tail over the threshold should be kept")
	}
	if summary.Intervals[0].DurationMs != MinTailGapMs+1 {
		t.Fatalf("tail duration = %d", summary.Intervals[0].DurationMs)
	}
}

func TestFinalizeDiscardsEmptySitting(t *testing.T) {
	t.Parallel()

	startedAt := time.UnixMilli(0).UTC()
	endedAt := time.UnixMilli(400).UTC()

	called := false
	_, ok := Finalize(nil, 300, startedAt, endedAt, func() int64 {
		called = true
		return 1
	})
	if ok {
		t.Fatal("an empty sitting should be discarded")
	}
	if called {
		t.Fatal("discarded sittings should not consume an id")
	}
}

func TestFinalizeDateISOIsUTCMillis(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+5", 5*60*60)
	endedAt := time.Date(2026, 3, 9, 5, 30, 0, 250_000_000, loc)

	summary, ok := Finalize([]Interval{{ID: 1, DurationMs: 900, TimestampMs: 1}}, 0,
		endedAt.Add(-time.Second), endedAt, sequentialIDs(7))
	if !ok {
		t.Fatal("Finalize rejected the sitting")
	}
	if summary.DateISO != "2026-03-09T00:30:00.250Z" {
		t.Fatalf("DateISO = %q", summary.DateISO)
	}
	if _, err := time.Parse(time.RFC3339, summary.DateISO); err != nil {
		t.Fatalf("DateISO does not parse as RFC 3339: %v", err)
	}
}
