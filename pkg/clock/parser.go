package clock

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidClock = errors.New("invalid 12-hour clock value")
	ErrInvalidSpan  = errors.New("invalid hours span")
	ErrInvalidTime  = errors.New("invalid query time")
)

var clock12Re = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*([AaPp])\.?[Mm]\.?$`)

// queryLayouts are tried in order by ParseQueryTime.
var queryLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"15:04:05",
	"15:04",
}

// Parse12 converts a 12-hour clock string such as "11:00 AM" or "9 pm" to
// minutes since midnight. 12 AM is midnight and 12 PM is noon.
func Parse12(s string) (Minutes, error) {
	matches := clock12Re.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hours, _ := strconv.Atoi(matches[1])
	minutes := 0
	if matches[2] != "" {
		minutes, _ = strconv.Atoi(matches[2])
	}
	if hours < 1 || hours > 12 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	pm := strings.EqualFold(matches[3], "p")
	switch {
	case pm && hours != 12:
		hours += 12
	case !pm && hours == 12:
		hours = 0
	}

	return Minutes(hours*60 + minutes), nil
}

// ParseSpan parses an hours string of the form "11:00 AM - 9:00 PM".
func ParseSpan(s string) (Span, error) {
	openStr, closeStr, ok := strings.Cut(s, " - ")
	if !ok {
		return Span{}, fmt.Errorf("%w: %q", ErrInvalidSpan, s)
	}

	open, err := Parse12(openStr)
	if err != nil {
		return Span{}, fmt.Errorf("%w: %w", ErrInvalidSpan, err)
	}
	closing, err := Parse12(closeStr)
	if err != nil {
		return Span{}, fmt.Errorf("%w: %w", ErrInvalidSpan, err)
	}

	return Span{Open: open, Close: closing}, nil
}

// ParseQueryTime extracts the time of day from a user-supplied time value.
//
// Timestamps like "2025-02-21T10:00:00-08:00" yield the wall-clock time as
// written; the offset is not applied. Bare "15:04" style values and 12-hour
// values such as "11 PM" are accepted too.
func ParseQueryTime(s string) (Minutes, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidTime)
	}

	for _, layout := range queryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Minutes(t.Hour()*60 + t.Minute()), nil
		}
	}

	if m, err := Parse12(s); err == nil {
		return m, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
}
