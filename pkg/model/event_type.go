package model

import "time"

// EventType is a category of event the business offers, for example
// "Wedding" or "Corporate Offsite".
type EventType struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name        string    `json:"name" bson:"name" validate:"required,min=2,max=120"`
	Description string    `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=1000"`
	BasePrice   float64   `json:"base_price" bson:"base_price" validate:"min=0"`
	Active      bool      `json:"active" bson:"active"`
	CreatedAt   time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// EventTypeUpdate carries a partial event type update.
type EventTypeUpdate struct {
	Name        *string  `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Description *string  `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=1000"`
	BasePrice   *float64 `json:"base_price,omitempty" bson:"base_price,omitempty" validate:"omitempty,min=0"`
	Active      *bool    `json:"active,omitempty" bson:"active,omitempty"`
}

// IsEmpty reports whether the update carries no changes at all.
func (u *EventTypeUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.BasePrice == nil && u.Active == nil
}
