package domain

import (
	"fmt"
	"time"
)

// sessionTimestampLayout renders e.g. "6:05 pm - Monday, 2 September 2024".
const sessionTimestampLayout = "3:04 pm - Monday, 2 January 2006"

// FormatTimestamp renders a session timestamp for display: 12-hour clock
// without a leading hour zero, zero-padded minutes, spelled-out weekday and
// month names.
func FormatTimestamp(t time.Time) string {
	return t.Format(sessionTimestampLayout)
}

// FormatDuration renders the elapsed time between start and end in whole
// minutes. Under an hour it reads "N mins"; from an hour up it reads
// "H hr M mins", with "hr" singular only when the hour count is exactly 1.
func FormatDuration(start, end time.Time) string {
	mins := end.Sub(start).Milliseconds() / 60000
	if mins < 60 {
		return fmt.Sprintf("%d mins", mins)
	}
	hours := mins / 60
	unit := "hrs"
	if hours == 1 {
		unit = "hr"
	}
	return fmt.Sprintf("%d %s %d mins", hours, unit, mins%60)
}
