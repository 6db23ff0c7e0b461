// Package scheduling implements the pure booking-calendar logic:
// date and time range overlap, conflict detection between bookings,
// per-day booking counts, and day availability classification against
// the configured daily event limit.
//
// All functions here are side-effect free and operate on the string
// date (YYYY-MM-DD) and time (HH:mm) representations used throughout
// the system, so services and handlers can call them without touching
// storage.
package scheduling
