package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	ErrScheduleConflict = errors.New("booking schedule conflicts with an existing booking")

	ErrDayLimitReached = errors.New("daily event limit reached for one or more days in the range")

	ErrInvalidDateRange = errors.New("end date must not be before start date")

	ErrInvalidTimeRange = errors.New("end time must be after start time")
)
