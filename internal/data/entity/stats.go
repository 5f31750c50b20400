package entity

import "github.com/google/uuid"

// BookingGroup is one row of a grouped confirmed-booking query. Only the key
// fields of the requested dimension are set.
type BookingGroup struct {
	Currency   string
	PackageID  uuid.UUID
	Month      string
	TotalCents int64
	Bookings   int64
	Travelers  int64
}
