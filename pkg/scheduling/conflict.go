package scheduling

import "eventdesk/pkg/model"

// Candidate is the schedule of a booking being created or edited,
// checked against existing bookings for conflicts. ExcludeID carries
// the booking's own id during edits so it never conflicts with itself.
type Candidate struct {
	ExcludeID string
	StartDate string
	EndDate   string
	StartTime string
	EndTime   string
}

// CheckConflict scans existing bookings in order and returns the first
// one whose schedule conflicts with the candidate, or nil when the
// candidate is free. A conflict requires overlap in both dimensions:
// the date ranges must share a day and the time ranges must overlap on
// the clock.
func CheckConflict(candidate Candidate, existing []model.EventBooking) *model.EventBooking {
	for i := range existing {
		b := &existing[i]
		if candidate.ExcludeID != "" && b.ID == candidate.ExcludeID {
			continue
		}
		if !DateRangesOverlap(candidate.StartDate, candidate.EndDate, b.StartDate, b.EndDate) {
			continue
		}
		if !TimeRangesOverlap(candidate.StartTime, candidate.EndTime, b.StartTime, b.EndTime) {
			continue
		}
		return b
	}
	return nil
}
