package model

import "time"

// EventBooking is a booked event for a customer. Dates are stored as
// ISO strings (YYYY-MM-DD) and times as 24-hour HH:mm so that range
// comparisons stay lexicographic and timezone-free.
type EventBooking struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	CustomerID    string    `json:"customer_id" bson:"customer_id" validate:"required,mongodb"`
	EventTypeID   string    `json:"event_type_id" bson:"event_type_id" validate:"required,mongodb"`
	Title         string    `json:"title" bson:"title" validate:"required,min=2,max=200"`
	StartDate     string    `json:"start_date" bson:"start_date" validate:"required,iso_date"`
	EndDate       string    `json:"end_date" bson:"end_date" validate:"required,iso_date"`
	StartTime     string    `json:"start_time" bson:"start_time" validate:"required,time_of_day"`
	EndTime       string    `json:"end_time" bson:"end_time" validate:"required,time_of_day"`
	Location      string    `json:"location" bson:"location" validate:"required,min=2,max=200"`
	TotalPrice    float64   `json:"total_price" bson:"total_price" validate:"min=0"`
	PaymentStatus bool      `json:"payment_status" bson:"payment_status"`
	Images        []string  `json:"images,omitempty" bson:"images,omitempty" validate:"omitempty,max=20,dive,url"`
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,max=2000"`
	CreatedAt     time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// IsMultiDay reports whether the booking spans more than one calendar day.
func (b *EventBooking) IsMultiDay() bool {
	return b.StartDate != "" && b.EndDate != "" && b.StartDate != b.EndDate
}

// EventBookingUpdate carries a partial update. Nil fields are left
// untouched by the repository.
type EventBookingUpdate struct {
	CustomerID    *string   `json:"customer_id,omitempty" bson:"customer_id,omitempty" validate:"omitempty,mongodb"`
	EventTypeID   *string   `json:"event_type_id,omitempty" bson:"event_type_id,omitempty" validate:"omitempty,mongodb"`
	Title         *string   `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,min=2,max=200"`
	StartDate     *string   `json:"start_date,omitempty" bson:"start_date,omitempty" validate:"omitempty,iso_date"`
	EndDate       *string   `json:"end_date,omitempty" bson:"end_date,omitempty" validate:"omitempty,iso_date"`
	StartTime     *string   `json:"start_time,omitempty" bson:"start_time,omitempty" validate:"omitempty,time_of_day"`
	EndTime       *string   `json:"end_time,omitempty" bson:"end_time,omitempty" validate:"omitempty,time_of_day"`
	Location      *string   `json:"location,omitempty" bson:"location,omitempty" validate:"omitempty,min=2,max=200"`
	TotalPrice    *float64  `json:"total_price,omitempty" bson:"total_price,omitempty" validate:"omitempty,min=0"`
	PaymentStatus *bool     `json:"payment_status,omitempty" bson:"payment_status,omitempty"`
	Images        *[]string `json:"images,omitempty" bson:"images,omitempty" validate:"omitempty,max=20,dive,url"`
	Notes         *string   `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,max=2000"`
}

// IsEmpty reports whether the update carries no changes at all.
func (u *EventBookingUpdate) IsEmpty() bool {
	return u.CustomerID == nil && u.EventTypeID == nil && u.Title == nil &&
		u.StartDate == nil && u.EndDate == nil && u.StartTime == nil &&
		u.EndTime == nil && u.Location == nil && u.TotalPrice == nil &&
		u.PaymentStatus == nil && u.Images == nil && u.Notes == nil
}

// ApplyTo merges the update onto a copy of the booking and returns it.
// The original booking is not modified.
func (u *EventBookingUpdate) ApplyTo(b EventBooking) EventBooking {
	if u.CustomerID != nil {
		b.CustomerID = *u.CustomerID
	}
	if u.EventTypeID != nil {
		b.EventTypeID = *u.EventTypeID
	}
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.StartDate != nil {
		b.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		b.EndDate = *u.EndDate
	}
	if u.StartTime != nil {
		b.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		b.EndTime = *u.EndTime
	}
	if u.Location != nil {
		b.Location = *u.Location
	}
	if u.TotalPrice != nil {
		b.TotalPrice = *u.TotalPrice
	}
	if u.PaymentStatus != nil {
		b.PaymentStatus = *u.PaymentStatus
	}
	if u.Images != nil {
		b.Images = *u.Images
	}
	if u.Notes != nil {
		b.Notes = *u.Notes
	}
	return b
}

// TouchesSchedule reports whether the update changes any field that
// participates in conflict detection.
func (u *EventBookingUpdate) TouchesSchedule() bool {
	return u.StartDate != nil || u.EndDate != nil || u.StartTime != nil || u.EndTime != nil
}
