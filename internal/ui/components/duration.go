package components

import "fmt"

// FormatClock renders elapsed milliseconds as a live timer readout with
// tenths, e.g. "04:12.3", growing to "1:04:12.3" past an hour.
func FormatClock(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	tenths := (ms / 100) % 10
	secs := (ms / 1_000) % 60
	mins := (ms / 60_000) % 60
	hours := ms / 3_600_000
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%d", hours, mins, secs, tenths)
	}
	return fmt.Sprintf("%02d:%02d.%d", mins, secs, tenths)
}

// FormatGap renders a gap duration compactly: "850ms", "4.2s", "1m 12s",
// "1h 04m".
func FormatGap(ms int64) string {
	switch {
	case ms < 1_000:
		return fmt.Sprintf("%dms", ms)
	case ms < 60_000:
		return fmt.Sprintf("%.1fs", float64(ms)/1_000)
	case ms < 3_600_000:
		return fmt.Sprintf("%dm %02ds", ms/60_000, (ms/1_000)%60)
	default:
		return fmt.Sprintf("%dh %02dm", ms/3_600_000, (ms/60_000)%60)
	}
}

// FormatGapFloat is FormatGap for fractional averages.
func FormatGapFloat(ms float64) string {
	if ms < 0 {
		ms = 0
	}
	return FormatGap(int64(ms + 0.5))
}
