package domain

// Improves reports whether a freshly closed gap beats the current personal
// best. Ties do not count; the record only moves on strictly longer gaps,
// which keeps the stored value monotonic.
func Improves(currentMs, candidateMs int64) bool {
	return candidateMs > currentMs
}
