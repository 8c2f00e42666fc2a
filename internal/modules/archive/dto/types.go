package dto

type IntervalInput struct {
	ID          int
	DurationMs  int64
	TimestampMs int64
}

// AppendInput is a finalized sitting as handed over by the engine.
type AppendInput struct {
	ID              int64
	DateISO         string
	Intervals       []IntervalInput
	TotalDurationMs int64
	ThoughtCount    int
	LongestGapMs    int64
	AvgGapMs        float64
}

type IntervalOutput struct {
	ID          int
	DurationMs  int64
	TimestampMs int64
}

type SessionOutput struct {
	ID              int64
	DateISO         string
	Intervals       []IntervalOutput
	TotalDurationMs int64
	ThoughtCount    int
	LongestGapMs    int64
	AvgGapMs        float64
}

// DayGroupOutput is one local calendar day of the history view.
type DayGroupOutput struct {
	Day      string
	Sessions []SessionOutput
}

type TotalsOutput struct {
	Sessions   int
	Thoughts   int
	DurationMs int64
	AvgGapMs   float64
}
