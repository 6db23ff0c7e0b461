package validator

import (
	"io"
	"testing"

	"eventdesk/pkg/logger"
	"eventdesk/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.LevelError, Output: io.Discard})
}

func validBooking() *model.EventBooking {
	return &model.EventBooking{
		CustomerID:  "66f0000000000000000000bb",
		EventTypeID: "66f0000000000000000000cc",
		Title:       "Sharma Wedding",
		StartDate:   "2026-06-10",
		EndDate:     "2026-06-11",
		StartTime:   "10:00",
		EndTime:     "18:00",
		Location:    "Lotus Garden Hall",
		TotalPrice:  150000,
	}
}

func TestBookingValidatorValidate(t *testing.T) {
	v := NewBookingValidator(testLogger())

	tests := []struct {
		name      string
		mutate    func(b *model.EventBooking)
		expectErr bool
	}{
		{
			name:      "valid booking",
			mutate:    func(b *model.EventBooking) {},
			expectErr: false,
		},
		{
			name:      "missing title",
			mutate:    func(b *model.EventBooking) { b.Title = "" },
			expectErr: true,
		},
		{
			name:      "title too short",
			mutate:    func(b *model.EventBooking) { b.Title = "x" },
			expectErr: true,
		},
		{
			name:      "bad customer id",
			mutate:    func(b *model.EventBooking) { b.CustomerID = "not-an-oid" },
			expectErr: true,
		},
		{
			name:      "bad date format",
			mutate:    func(b *model.EventBooking) { b.StartDate = "10/06/2026" },
			expectErr: true,
		},
		{
			name:      "impossible date",
			mutate:    func(b *model.EventBooking) { b.EndDate = "2026-02-30" },
			expectErr: true,
		},
		{
			name:      "bad time format",
			mutate:    func(b *model.EventBooking) { b.StartTime = "25:00" },
			expectErr: true,
		},
		{
			name:      "end date before start date",
			mutate:    func(b *model.EventBooking) { b.StartDate = "2026-06-12"; b.EndDate = "2026-06-10" },
			expectErr: true,
		},
		{
			name:      "end time before start time",
			mutate:    func(b *model.EventBooking) { b.StartTime = "18:00"; b.EndTime = "10:00" },
			expectErr: true,
		},
		{
			name:      "end time equal to start time",
			mutate:    func(b *model.EventBooking) { b.EndTime = b.StartTime },
			expectErr: true,
		},
		{
			name:      "negative price",
			mutate:    func(b *model.EventBooking) { b.TotalPrice = -1 },
			expectErr: true,
		},
		{
			name:      "bad image url",
			mutate:    func(b *model.EventBooking) { b.Images = []string{"not a url"} },
			expectErr: true,
		},
		{
			name:      "valid image urls",
			mutate:    func(b *model.EventBooking) { b.Images = []string{"https://cdn.example.com/a.jpg"} },
			expectErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(b)

			err := v.Validate(b)
			if tt.expectErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}

func TestBookingValidatorValidateUpdate(t *testing.T) {
	v := NewBookingValidator(testLogger())

	title := "Updated Title"
	badDate := "June 10"
	startDate := "2026-06-12"
	endDate := "2026-06-10"

	tests := []struct {
		name      string
		update    *model.EventBookingUpdate
		expectErr bool
	}{
		{
			name:      "empty update is valid",
			update:    &model.EventBookingUpdate{},
			expectErr: false,
		},
		{
			name:      "title update",
			update:    &model.EventBookingUpdate{Title: &title},
			expectErr: false,
		},
		{
			name:      "bad date in update",
			update:    &model.EventBookingUpdate{StartDate: &badDate},
			expectErr: true,
		},
		{
			name:      "inverted range in update",
			update:    &model.EventBookingUpdate{StartDate: &startDate, EndDate: &endDate},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUpdate(tt.update)
			if tt.expectErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}
