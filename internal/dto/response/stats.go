package response

import "tour-booking/internal/analytics"

const NoConfirmedBookingsMessage = "No confirmed bookings yet"

type TotalResponse struct {
	Total int64 `json:"total"`
}

type CurrencyRevenueResponse struct {
	Currency   string `json:"currency"`
	TotalCents int64  `json:"totalCents"`
	Amount     int64  `json:"amount"`
	Bookings   int64  `json:"bookings"`
}

type RevenueResponse struct {
	ByCurrency    []CurrencyRevenueResponse `json:"byCurrency"`
	OverallCents  int64                     `json:"overallCents"`
	OverallAmount int64                     `json:"overallAmount"`
}

type CustomersResponse struct {
	TotalTravelers int64 `json:"totalTravelers"`
	Bookings       int64 `json:"bookings"`
}

// MostBookedPackageResponse carries either the top package or, when there
// are no confirmed bookings, only Message. Display fields are omitted for a
// package that has since been deleted.
type MostBookedPackageResponse struct {
	PackageID string  `json:"packageId,omitempty"`
	Slug      string  `json:"slug,omitempty"`
	Title     string  `json:"title,omitempty"`
	Image     *string `json:"image,omitempty"`
	Bookings  int64   `json:"bookings,omitempty"`
	Travelers int64   `json:"travelers,omitempty"`
	Message   string  `json:"message,omitempty"`
}

type MonthRevenueResponse struct {
	Month      string `json:"month"`
	Currency   string `json:"currency"`
	TotalCents int64  `json:"totalCents"`
	Amount     int64  `json:"amount"`
	Bookings   int64  `json:"bookings"`
}

type OverviewTotals struct {
	Packages          int64 `json:"packages"`
	ConfirmedBookings int64 `json:"confirmedBookings"`
	Customers         int64 `json:"customers"`
}

type OverviewResponse struct {
	Totals            OverviewTotals             `json:"totals"`
	Revenue           RevenueResponse            `json:"revenue"`
	MostBookedPackage *MostBookedPackageResponse `json:"mostBookedPackage"`
}

// Helper converters
func RevenueToResponse(rev analytics.Revenue) RevenueResponse {
	out := RevenueResponse{
		ByCurrency:    make([]CurrencyRevenueResponse, 0, len(rev.ByCurrency)),
		OverallCents:  rev.OverallMinorUnits,
		OverallAmount: rev.OverallMajorAmount,
	}
	for _, c := range rev.ByCurrency {
		out.ByCurrency = append(out.ByCurrency, CurrencyRevenueResponse{
			Currency:   c.Currency,
			TotalCents: c.TotalMinorUnits,
			Amount:     c.MajorAmount,
			Bookings:   c.Bookings,
		})
	}
	return out
}

func CustomersToResponse(c analytics.Customers) CustomersResponse {
	return CustomersResponse{TotalTravelers: c.TotalTravelers, Bookings: c.Bookings}
}

// TopPackageToResponse maps a nil top package to nil
func TopPackageToResponse(top *analytics.TopPackage) *MostBookedPackageResponse {
	if top == nil {
		return nil
	}
	return &MostBookedPackageResponse{
		PackageID: top.PackageID.String(),
		Slug:      top.Slug,
		Title:     top.Title,
		Image:     top.Image,
		Bookings:  top.Bookings,
		Travelers: top.Travelers,
	}
}

func MonthsToResponse(months []analytics.MonthRevenue) []MonthRevenueResponse {
	out := make([]MonthRevenueResponse, 0, len(months))
	for _, m := range months {
		out = append(out, MonthRevenueResponse{
			Month:      m.Month,
			Currency:   m.Currency,
			TotalCents: m.TotalMinorUnits,
			Amount:     m.MajorAmount,
			Bookings:   m.Bookings,
		})
	}
	return out
}
