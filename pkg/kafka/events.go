// Package kafka publishes booking lifecycle events so downstream
// consumers (notifications, reporting) can react to calendar changes.
package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"eventdesk/pkg/model"
)

// Event types emitted on the booking events topic.
const (
	EventBookingCreated  = "booking.created"
	EventBookingUpdated  = "booking.updated"
	EventBookingDeleted  = "booking.deleted"
	EventPaymentReceived = "booking.payment_received"
)

// Header keys attached to every published message.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

// BookingEvent is the payload published for every booking change. The
// full booking snapshot rides along so consumers never need to call
// back into the API.
type BookingEvent struct {
	EventID    string             `json:"event_id"`
	EventType  string             `json:"event_type"`
	BookingID  string             `json:"booking_id"`
	Booking    model.EventBooking `json:"booking"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// NewBookingEvent builds an event for a booking with a fresh event id.
func NewBookingEvent(eventType string, booking model.EventBooking) BookingEvent {
	return BookingEvent{
		EventID:    uuid.New().String(),
		EventType:  eventType,
		BookingID:  booking.ID,
		Booking:    booking,
		OccurredAt: time.Now().UTC(),
	}
}

// Encode serialises the event for the wire.
func (e BookingEvent) Encode() ([]byte, error) {
	return json.Marshal(e)
}
