package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusRejected, BookingStatusCancelled:
		return true
	}
	return false
}

type BookingSource string

const (
	BookingSourceWebForm  BookingSource = "WEB_FORM"
	BookingSourceWhatsApp BookingSource = "WHATSAPP"
)

func (s BookingSource) IsValid() bool {
	return s == BookingSourceWebForm || s == BookingSourceWhatsApp
}

type Customer struct {
	FirstName string `db:"customer_first_name"`
	LastName  string `db:"customer_last_name"`
	Email     string `db:"customer_email"`
	Phone     string `db:"customer_phone"`
}

func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

type Trip struct {
	TravelDate      time.Time `db:"travel_date"`
	Travelers       int       `db:"travelers"`
	SpecialRequests string    `db:"special_requests"`
}

// Pricing is resolved once when the booking is created and never recomputed.
type Pricing struct {
	Currency            string `db:"currency"`
	PackagePriceCents   int64  `db:"package_price_cents"`
	SDFFeeCents         int64  `db:"sdf_fee_cents"`
	TotalPerPersonCents int64  `db:"total_per_person_cents"`
	TotalGroupCents     int64  `db:"total_group_cents"`
}

type Booking struct {
	Base
	PackageID            uuid.UUID     `db:"package_id"`
	PackageTitleSnapshot string        `db:"package_title_snapshot"`
	Status               BookingStatus `db:"status"`
	Customer             Customer
	Trip                 Trip
	Pricing              Pricing
	Source               BookingSource `db:"source"`
	AdminReason          *string       `db:"admin_reason"`
}

// StatusChange is an operator decision on a booking. Any status may be
// applied on top of any other; there is no guarded transition table.
type StatusChange struct {
	Status BookingStatus
	Reason *string
	At     time.Time
}

// NewStatusChange attaches reason only when it is non-empty and the target
// is not CANCELLED; an absent reason leaves the stored one untouched.
func NewStatusChange(status BookingStatus, reason string, at time.Time) StatusChange {
	change := StatusChange{Status: status, At: at}
	if r := strings.TrimSpace(reason); r != "" && status != BookingStatusCancelled {
		change.Reason = &r
	}
	return change
}

// BookingPatch holds operator edits; nil fields are left unchanged.
type BookingPatch struct {
	FirstName       *string
	LastName        *string
	Email           *string
	Phone           *string
	TravelDate      *time.Time
	SpecialRequests *string
	AdminReason     *string
}

func (p BookingPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.Phone == nil &&
		p.TravelDate == nil && p.SpecialRequests == nil && p.AdminReason == nil
}
