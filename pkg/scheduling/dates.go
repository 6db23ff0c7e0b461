package scheduling

import "time"

// DatesInRange expands an inclusive date range into the list of
// YYYY-MM-DD days it covers, in order. An unparseable bound or an end
// before the start yields an empty list. The expansion is capped at a
// year to keep a corrupt range from producing an unbounded walk.
func DatesInRange(startDate, endDate string) []string {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return nil
	}
	if end.Before(start) {
		return nil
	}

	const maxDays = 366

	var days []string
	for d := start; !d.After(end) && len(days) < maxDays; d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DateLayout))
	}
	return days
}

// MonthWindow returns the inclusive first and last day of a calendar
// month given in YYYY-MM form. ok is false when the input is not a
// valid month.
func MonthWindow(month string) (first, last string, ok bool) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", false
	}
	firstDay := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)
	return firstDay.Format(DateLayout), lastDay.Format(DateLayout), true
}

// NextSelection implements the calendar's two-click range selection.
// The first click, or a click on a day before the current start,
// restarts the range at the clicked day; any other click completes the
// range by setting the end.
func NextSelection(currentStart, clicked string) (start, end string) {
	if currentStart == "" || clicked < currentStart {
		return clicked, ""
	}
	return currentStart, clicked
}
