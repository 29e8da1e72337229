package clock

import "fmt"

// Minutes is a time of day expressed as minutes since midnight.
type Minutes int

// Hour returns the 24-hour clock hour.
func (m Minutes) Hour() int { return int(m) / 60 }

// Minute returns the minute within the hour.
func (m Minutes) Minute() int { return int(m) % 60 }

// String renders m on a 12-hour clock, e.g. "10:00 AM".
func (m Minutes) String() string {
	return Format12(m.Hour(), m.Minute())
}

// Span is an opening interval within a single day.
type Span struct {
	Open  Minutes
	Close Minutes
}

// Contains reports whether m lies in [Open, Close]. Spans that cross midnight
// (Close < Open) never contain anything.
func (s Span) Contains(m Minutes) bool {
	return m >= s.Open && m <= s.Close
}

// Format12 formats a 24-hour hour and minute as "H:MM AM/PM".
func Format12(hours, minutes int) string {
	modifier := "AM"
	if hours >= 12 {
		modifier = "PM"
	}
	hours %= 12
	if hours == 0 {
		hours = 12
	}
	return fmt.Sprintf("%d:%02d %s", hours, minutes, modifier)
}
