package dto

// BestOutput carries the personal best after a read or a consider. Improved
// is true only when the call that produced it raised the record.
type BestOutput struct {
	DurationMs int64
	Improved   bool
}
