package domain

import (
	"testing"
	"time"
)

func session(id int64, dateISO string, thoughtAvg float64, thoughts int, totalMs int64) Session {
	intervals := make([]Interval, thoughts)
	for i := range intervals {
		intervals[i] = Interval{ID: i + 1, DurationMs: int64(thoughtAvg), TimestampMs: id}
	}
	return Session{
		ID:              id,
		DateISO:         dateISO,
		Intervals:       intervals,
		TotalDurationMs: totalMs,
		ThoughtCount:    thoughts,
		LongestGapMs:    int64(thoughtAvg),
		AvgGapMs:        thoughtAvg,
	}
}

func TestGroupByDayKeepsArchiveOrder(t *testing.T) {
	t.Parallel()

	kolkata := time.FixedZone("IST", int((5*time.Hour + 30*time.Minute).Seconds()))

	// Newest first, like the archive. Session 3 ends late on the 9th UTC,
	// which is already the 10th in Kolkata, so it shares a day with 4.
	sessions := []Session{
		session(4, "2026-03-10T18:00:00.000Z", 800, 2, 4_000),
		session(3, "2026-03-09T20:00:00.000Z", 700, 1, 2_000),
		session(2, "2026-03-09T10:00:00.000Z", 600, 3, 6_000),
		session(1, "2026-03-08T09:00:00.000Z", 500, 1, 1_000),
	}

	groups := GroupByDay(sessions, kolkata)
	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}
	if groups[0].Day != "Tue, 10 Mar 2026" {
		t.Fatalf("first day = %q", groups[0].Day)
	}
	if len(groups[0].Sessions) != 2 || groups[0].Sessions[0].ID != 4 || groups[0].Sessions[1].ID != 3 {
		t.Fatalf("first group lost archive order: %+v", groups[0].Sessions)
	}
	if groups[1].Day != "Mon, 09 Mar 2026" || len(groups[1].Sessions) != 1 || groups[1].Sessions[0].ID != 2 {
		t.Fatalf("second group = %+v", groups[1])
	}
	if groups[2].Day != "Sun, 08 Mar 2026" {
		t.Fatalf("third day = %q", groups[2].Day)
	}
}

func TestGroupByDayLocalMidnightSplit(t *testing.T) {
	t.Parallel()

	sessions := []Session{
		session(2, "2026-03-10T00:00:00.500Z", 800, 1, 1_000),
		session(1, "2026-03-09T23:59:59.500Z", 700, 1, 1_000),
	}

	groups := GroupByDay(sessions, time.UTC)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want a split at midnight", len(groups))
	}
	if groups[0].Day != "Tue, 10 Mar 2026" || groups[1].Day != "Mon, 09 Mar 2026" {
		t.Fatalf("days = %q, %q", groups[0].Day, groups[1].Day)
	}
}

func TestGroupByDayFallsBackToIDForGarbledDates(t *testing.T) {
	t.Parallel()

	endMs := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC).UnixMilli()
	s := session(endMs, "not a timestamp", 900, 1, 1_000)

	groups := GroupByDay([]Session{s}, time.UTC)
	if len(groups) != 1 || groups[0].Day != "Mon, 09 Mar 2026" {
		t.Fatalf("groups = %+v", groups)
	}
}

func TestSummarizeAveragesTheAverages(t *testing.T) {
	t.Parallel()

	sessions := []Session{
		session(2, "2026-03-10T10:00:00.000Z", 1000, 4, 10_000),
		session(1, "2026-03-09T10:00:00.000Z", 500, 1, 2_000),
	}

	totals := Summarize(sessions)
	if totals.Sessions != 2 || totals.Thoughts != 5 || totals.DurationMs != 12_000 {
		t.Fatalf("totals = %+v", totals)
	}
	// Mean of the two per-sitting averages, not a weighted mean over all
	// five intervals (which would be 900).
	if totals.AvgGapMs != 750 {
		t.Fatalf("AvgGapMs = %v, want 750", totals.AvgGapMs)
	}
}

func TestSummarizeEmptyArchive(t *testing.T) {
	t.Parallel()

	totals := Summarize(nil)
	if totals.Sessions != 0 || totals.AvgGapMs != 0 {
		t.Fatalf("totals = %+v", totals)
	}
}

func TestSessionValidate(t *testing.T) {
	t.Parallel()

	good := session(10, "2026-03-09T10:00:00.000Z", 600, 2, 3_000)
	if err := good.Validate(); err != nil {
		t.Fatalf("valid session rejected: %v", err)
	}

	bad := good
	bad.ThoughtCount = 5
	if err := bad.Validate(); err == nil {
		t.Fatal("mismatched thought count accepted")
	}

	bad = good
	bad.LongestGapMs = 100
	if err := bad.Validate(); err == nil {
		t.Fatal("interval longer than the longest gap accepted")
	}

	bad = good
	bad.ID = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("zero id accepted")
	}
}
