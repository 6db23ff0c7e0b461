package scheduling

import "eventdesk/pkg/model"

// Tier is the availability classification of a calendar day.
type Tier string

const (
	// TierAvailable marks a day with little or no booking pressure.
	TierAvailable Tier = "available"
	// TierLimited marks a day that is filling up but still bookable.
	TierLimited Tier = "limited"
	// TierUnavailable marks a day at or over the daily event limit.
	TierUnavailable Tier = "unavailable"
)

// limitedThreshold is the booking count at which a day starts showing
// as limited.
const limitedThreshold = 2

// BuildDayCounts aggregates bookings into a per-day count map keyed by
// YYYY-MM-DD. A multi-day booking contributes one to every day it
// covers, inclusive of both bounds. When excludeID is non-empty that
// booking is skipped, so an edit screen can show counts as if the
// booking being edited did not exist.
func BuildDayCounts(bookings []model.EventBooking, excludeID string) map[string]int {
	counts := make(map[string]int)
	for i := range bookings {
		b := &bookings[i]
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		for _, day := range DatesInRange(b.StartDate, b.EndDate) {
			counts[day]++
		}
	}
	return counts
}

// ClassifyDay maps a day's booking count to its availability tier
// under the given daily limit. Counts at or above the limit are
// unavailable; counts at or above the limited threshold show as
// limited so the calendar can warn before a day fills completely.
func ClassifyDay(count, limit int) Tier {
	switch {
	case count >= limit:
		return TierUnavailable
	case count >= limitedThreshold:
		return TierLimited
	default:
		return TierAvailable
	}
}

// IsDateSelectable reports whether a day with the given booking count
// can accept one more booking under the limit.
func IsDateSelectable(count, limit int) bool {
	return count < limit
}
