package response

import (
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/utils"
)

type BookingCreatedResponse struct {
	BookingID string               `json:"bookingId"`
	Status    entity.BookingStatus `json:"status"`
	Currency  string               `json:"currency"`
	Date      string               `json:"date"`
	Travelers int                  `json:"travelers"`
}

type CustomerResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type TripResponse struct {
	TravelDate      string `json:"travelDate"`
	Travelers       int    `json:"travelers"`
	SpecialRequests string `json:"specialRequests"`
}

type PricingResponse struct {
	Currency            string `json:"currency"`
	PackagePriceCents   int64  `json:"packagePriceCents"`
	SDFFeeCents         int64  `json:"sdfFeeCents"`
	TotalPerPersonCents int64  `json:"totalPerPersonCents"`
	TotalGroupCents     int64  `json:"totalGroupCents"`
}

type BookingResponse struct {
	ID                   string               `json:"id"`
	Package              string               `json:"package"`
	PackageTitleSnapshot string               `json:"packageTitleSnapshot"`
	Status               entity.BookingStatus `json:"status"`
	Customer             CustomerResponse     `json:"customer"`
	Trip                 TripResponse         `json:"trip"`
	Pricing              PricingResponse      `json:"pricing"`
	Source               entity.BookingSource `json:"source"`
	AdminReason          *string              `json:"adminReason,omitempty"`
	CreatedAt            time.Time            `json:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt"`
}

// BookingActionResponse is returned by confirm, reject and cancel
type BookingActionResponse struct {
	OK      bool             `json:"ok"`
	Booking *BookingResponse `json:"booking,omitempty"`
}

// Receipt is a rendered PDF receipt
type Receipt struct {
	Filename string
	Body     []byte
}

// Helper converters
func BookingCreatedToResponse(b *entity.Booking) BookingCreatedResponse {
	return BookingCreatedResponse{
		BookingID: b.ID.String(),
		Status:    b.Status,
		Currency:  b.Pricing.Currency,
		Date:      utils.FormatDate(b.Trip.TravelDate),
		Travelers: b.Trip.Travelers,
	}
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:                   b.ID.String(),
		Package:              b.PackageID.String(),
		PackageTitleSnapshot: b.PackageTitleSnapshot,
		Status:               b.Status,
		Customer: CustomerResponse{
			FirstName: b.Customer.FirstName,
			LastName:  b.Customer.LastName,
			Email:     b.Customer.Email,
			Phone:     b.Customer.Phone,
		},
		Trip: TripResponse{
			TravelDate:      utils.FormatDate(b.Trip.TravelDate),
			Travelers:       b.Trip.Travelers,
			SpecialRequests: b.Trip.SpecialRequests,
		},
		Pricing: PricingResponse{
			Currency:            b.Pricing.Currency,
			PackagePriceCents:   b.Pricing.PackagePriceCents,
			SDFFeeCents:         b.Pricing.SDFFeeCents,
			TotalPerPersonCents: b.Pricing.TotalPerPersonCents,
			TotalGroupCents:     b.Pricing.TotalGroupCents,
		},
		Source:      b.Source,
		AdminReason: b.AdminReason,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
