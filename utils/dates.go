// utils/dates.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// fallback layouts for inputs that are not ISO date-first strings
var dateFallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC1123,
}

// NormalizeLocalDate turns a date string into the local calendar day it names,
// at midnight with no time-of-day left. The date portion is taken verbatim:
// "2025-03-10T23:59:59Z" and "2025-03-10" both come back as March 10 local,
// whatever the runtime's offset. Going through a timestamp first would shift
// the day at midnight boundaries, so the components are parsed directly.
func NormalizeLocalDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	datePart := s
	if i := strings.Index(s, "T"); i > 0 {
		datePart = s[:i]
	}

	if parts := strings.Split(datePart, "-"); len(parts) == 3 {
		year, errY := strconv.Atoi(parts[0])
		month, errM := strconv.Atoi(parts[1])
		day, errD := strconv.Atoi(parts[2])
		if errY == nil && errM == nil && errD == nil &&
			month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
		}
	}

	for _, layout := range dateFallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NormalizeDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// NormalizeDay strips the time-of-day from t, re-anchoring it to local midnight.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// FormatYMD renders a calendar date as zero-padded YYYY-MM-DD. Lexical order
// on these strings is chronological order, which is how date ordering is
// compared everywhere here.
func FormatYMD(t time.Time) string {
	return t.Format("2006-01-02")
}

// NightsBetween counts the nights in [checkIn, checkOut). Rounding absorbs the
// odd-length days around DST transitions.
func NightsBetween(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	n := int(hours/24 + 0.5)
	if n < 0 {
		return 0
	}
	return n
}
