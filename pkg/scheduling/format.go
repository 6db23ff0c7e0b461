package scheduling

import (
	"fmt"
	"time"
)

// FormatDate renders a YYYY-MM-DD date for display, for example
// "Wed, 10 Jun 2026". Invalid input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon, 02 Jan 2006")
}

// FormatTime renders an HH:mm time of day in 12-hour form, for example
// "6:30 PM". Invalid input is returned unchanged.
func FormatTime(timeOfDay string) string {
	minutes, ok := ParseTimeOfDay(timeOfDay)
	if !ok {
		return timeOfDay
	}
	t := time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// FormatDateTime renders a date and time together, for example
// "Wed, 10 Jun 2026 at 6:30 PM". A missing time yields just the date.
func FormatDateTime(date, timeOfDay string) string {
	if timeOfDay == "" {
		return FormatDate(date)
	}
	return fmt.Sprintf("%s at %s", FormatDate(date), FormatTime(timeOfDay))
}

// DateRangeLabel renders an inclusive date range. Single-day ranges
// collapse to one date.
func DateRangeLabel(startDate, endDate string) string {
	if startDate == endDate || endDate == "" {
		return FormatDate(startDate)
	}
	return fmt.Sprintf("%s - %s", FormatDate(startDate), FormatDate(endDate))
}

// TimeRangeLabel renders a time range, for example "10:00 AM - 6:30 PM".
// Missing bounds yield an empty string.
func TimeRangeLabel(startTime, endTime string) string {
	if startTime == "" || endTime == "" {
		return ""
	}
	return fmt.Sprintf("%s - %s", FormatTime(startTime), FormatTime(endTime))
}
