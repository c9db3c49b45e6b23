// Package format provides small display formatting helpers shared by the
// CLI and TUI presentation layers.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// Fragment decodes finish in microseconds, so the sub-millisecond branch is the
// one users actually see.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatPercent formats a 0..100 percentage with one decimal place.
//
// Parameters:
//   - p: The percentage value.
//
// Returns:
//   - string: A formatted string such as "42.0%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatEfficiency renders the vanity efficiency ratio between characters
// produced and the machinery that produced them, with four decimal places to
// look more scientific than it is.
//
// Parameters:
//   - produced: The number of characters produced.
//   - machinery: The amount of machinery involved (any positive unit works).
//
// Returns:
//   - string: A formatted percentage string.
func FormatEfficiency(produced, machinery int) string {
	if machinery <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.4f%%", float64(produced)/float64(machinery)*100)
}
