package model

import "time"

// Customer is a person or organisation that books events.
type Customer struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name      string    `json:"name" bson:"name" validate:"required,min=2,max=120"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,e164"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,max=2000"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// CustomerUpdate carries a partial customer update.
type CustomerUpdate struct {
	Name  *string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Email *string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,e164"`
	Notes *string `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,max=2000"`
}

// IsEmpty reports whether the update carries no changes at all.
func (u *CustomerUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.Notes == nil
}
