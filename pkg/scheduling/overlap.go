package scheduling

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// DateRangesOverlap reports whether two inclusive date ranges share at
// least one calendar day. Dates are YYYY-MM-DD strings, which compare
// correctly under lexicographic ordering.
//
// Both ranges are treated as closed intervals: bookings that meet only
// at a shared boundary day still overlap, because each occupies that
// whole day on the calendar.
func DateRangesOverlap(start1, end1, start2, end2 string) bool {
	return start1 <= end2 && start2 <= end1
}

// ParseTimeOfDay parses a time-of-day string into minutes since
// midnight. It accepts HH:mm and tolerates trailing seconds and
// fractional seconds (HH:mm:ss, HH:mm:ss.fff) as stored by some
// upstream clients. The second result is false when the input is
// empty or not a valid time of day.
func ParseTimeOfDay(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

// TimeRangesOverlap reports whether two half-open time-of-day ranges
// [start, end) overlap. Back-to-back bookings that share a boundary,
// for example 10:00-12:00 and 12:00-14:00, do not conflict.
//
// When any of the four times is missing or unparseable the ranges are
// treated as non-overlapping, matching the lenient behavior expected
// for legacy bookings without times.
func TimeRangesOverlap(start1, end1, start2, end2 string) bool {
	s1, ok := ParseTimeOfDay(start1)
	if !ok {
		return false
	}
	e1, ok := ParseTimeOfDay(end1)
	if !ok {
		return false
	}
	s2, ok := ParseTimeOfDay(start2)
	if !ok {
		return false
	}
	e2, ok := ParseTimeOfDay(end2)
	if !ok {
		return false
	}

	return s1 < e2 && s2 < e1
}

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidTimeOfDay reports whether s parses as a time of day.
func ValidTimeOfDay(s string) bool {
	_, ok := ParseTimeOfDay(s)
	return ok
}
