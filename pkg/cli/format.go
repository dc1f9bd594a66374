package cli

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration for display, keeping sub-second
// precision only where it matters.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	secs := d.Seconds()
	if secs < 60 {
		return fmt.Sprintf("%.1fs", secs)
	}
	mins := int(secs / 60)
	secs -= float64(mins * 60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}

// FormatDB formats a decibel value with sign.
func FormatDB(v float64) string {
	return fmt.Sprintf("%+.1f dB", v)
}

// FormatLUFS formats a loudness value.
func FormatLUFS(v float64) string {
	return fmt.Sprintf("%.1f LUFS", v)
}
