package domain

import (
	"fmt"
	"time"
)

// Interval mirrors the engine's closed gap in its persisted form. The JSON
// field names are the storage contract; older data files depend on them.
type Interval struct {
	ID          int   `json:"id"`
	DurationMs  int64 `json:"durationMs"`
	TimestampMs int64 `json:"timestampMs"`
}

// Session is one archived sitting.
type Session struct {
	ID              int64      `json:"id"`
	DateISO         string     `json:"dateIso"`
	Intervals       []Interval `json:"intervals"`
	TotalDurationMs int64      `json:"totalDurationMs"`
	ThoughtCount    int        `json:"thoughtCount"`
	LongestGapMs    int64      `json:"longestGapMs"`
	AvgGapMs        float64    `json:"avgGapMs"`
}

func (s Session) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("session id must be positive")
	}
	if s.ThoughtCount != len(s.Intervals) {
		return fmt.Errorf("thought count %d does not match %d intervals", s.ThoughtCount, len(s.Intervals))
	}
	for _, iv := range s.Intervals {
		if iv.DurationMs < 0 {
			return fmt.Errorf("interval %d has negative duration", iv.ID)
		}
		if iv.DurationMs > s.LongestGapMs {
			return fmt.Errorf("interval %d exceeds the longest gap", iv.ID)
		}
	}
	return nil
}

// DayGroup is all sittings that ended on one local calendar day, in the
// order they appear in the archive.
type DayGroup struct {
	Day      string
	Sessions []Session
}

// dayFormat renders group headings, e.g. "Mon, 02 Mar 2026".
const dayFormat = "Mon, 02 Jan 2006"

// GroupByDay buckets sessions by the calendar day of their end timestamp in
// the given location. Group order follows first appearance, so a newest-first
// archive yields newest-first days with the archive order kept inside each.
func GroupByDay(sessions []Session, loc *time.Location) []DayGroup {
	var groups []DayGroup
	index := make(map[string]int)
	for _, session := range sessions {
		day := sessionDay(session, loc)
		at, ok := index[day]
		if !ok {
			at = len(groups)
			index[day] = at
			groups = append(groups, DayGroup{Day: day})
		}
		groups[at].Sessions = append(groups[at].Sessions, session)
	}
	return groups
}

func sessionDay(session Session, loc *time.Location) string {
	endedAt, err := time.Parse(time.RFC3339, session.DateISO)
	if err != nil {
		// Ids are minted from the end-of-sitting clock, so they still
		// place a record with a garbled date on the right day.
		endedAt = time.UnixMilli(session.ID)
	}
	return endedAt.In(loc).Format(dayFormat)
}

// Totals aggregates the whole archive for the history footer.
type Totals struct {
	Sessions   int
	Thoughts   int
	DurationMs int64
	// AvgGapMs is the plain mean of per-sitting averages, so a short
	// sitting weighs exactly as much as a marathon one.
	AvgGapMs float64
}

func Summarize(sessions []Session) Totals {
	t := Totals{Sessions: len(sessions)}
	if len(sessions) == 0 {
		return t
	}
	var avgSum float64
	for _, session := range sessions {
		t.Thoughts += session.ThoughtCount
		t.DurationMs += session.TotalDurationMs
		avgSum += session.AvgGapMs
	}
	t.AvgGapMs = avgSum / float64(len(sessions))
	return t
}
