package dto

// SnapshotOutput is the live sitting state plus the personal best, which is
// everything a frontend needs to render one frame.
type SnapshotOutput struct {
	Active       bool
	Paused       bool
	ElapsedMs    int64
	ThoughtCount int
	LastGapMs    int64
	BestGapMs    int64
}

// EndOutput reports what became of a sitting after the end intent. Archived
// is false when the sitting was too short to keep.
type EndOutput struct {
	Archived        bool
	SessionID       int64
	ThoughtCount    int
	TotalDurationMs int64
	LongestGapMs    int64
	AvgGapMs        float64
}
