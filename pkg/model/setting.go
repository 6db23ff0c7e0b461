package model

import "time"

// Setting is a single key/value configuration row. Values are kept as
// strings so the settings collection stays schemaless; typed accessors
// live in the settings service.
type Setting struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Key       string    `json:"key" bson:"key" validate:"required,min=1,max=100"`
	Value     string    `json:"value" bson:"value" validate:"required,max=500"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// BookingLock is an advisory lock document. A booking mutation takes a
// lock on a well-known key before running its conflict re-check inside
// a transaction; the unique _id makes acquisition race-free. Expired
// locks are reaped by a TTL index on expires_at.
type BookingLock struct {
	ID        string    `bson:"_id"`
	ExpiresAt time.Time `bson:"expires_at"`
	CreatedAt time.Time `bson:"created_at"`
}
