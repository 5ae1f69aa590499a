// Package timecode converts between free-form clip time text and whole seconds.
package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxSeconds bounds every parsed value. Larger input degrades to 0 like any
// other unreadable text.
const MaxSeconds = 1<<31 - 1

// ParseDuration accepts "90", "1:30" or "1:01:30" and returns the total number
// of seconds. Anything it cannot read degrades to 0 instead of failing, so an
// unparsable field is indistinguishable from an explicit zero.
func ParseDuration(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	if isDigits(text) {
		n, err := strconv.Atoi(text)
		if err != nil || n > MaxSeconds {
			return 0
		}
		return n
	}

	parts := strings.Split(text, ":")
	values := make([]int64, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if !isDigits(p) {
			return 0
		}
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n > MaxSeconds {
			return 0
		}
		values[i] = n
	}

	var total int64
	switch len(values) {
	case 2:
		total = values[0]*60 + values[1]
	case 3:
		total = values[0]*3600 + values[1]*60 + values[2]
	default:
		return 0
	}
	if total > MaxSeconds {
		return 0
	}
	return int(total)
}

// FormatDuration renders seconds as H:MM:SS when at least an hour long and
// M:SS otherwise. Negative input is clamped to zero.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatRange renders "start -> end (Ns)" for a clip listing.
func FormatRange(start, end int) string {
	return fmt.Sprintf("%s -> %s (%ds)", FormatDuration(start), FormatDuration(end), end-start)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
