package analytics

import (
	"context"

	"tour-booking/internal/data/entity"

	"github.com/google/uuid"
)

type CurrencyRevenue struct {
	Currency        string
	TotalMinorUnits int64
	MajorAmount     int64
	Bookings        int64
}

type Revenue struct {
	ByCurrency         []CurrencyRevenue
	OverallMinorUnits  int64
	OverallMajorAmount int64
}

type MonthRevenue struct {
	Month           string
	Currency        string
	TotalMinorUnits int64
	MajorAmount     int64
	Bookings        int64
}

type Customers struct {
	TotalTravelers int64
	Bookings       int64
}

// TopPackage is the most booked package. Slug, Title and Image stay empty
// when the package no longer exists.
type TopPackage struct {
	PackageID uuid.UUID
	Slug      string
	Title     string
	Image     *string
	Bookings  int64
	Travelers int64
	Orphaned  bool
}

// PackageLookup resolves a package reference; (nil, nil) means it is gone
type PackageLookup func(ctx context.Context, id uuid.UUID) (*entity.Package, error)

// ProjectRevenue expects groups keyed by currency, already ordered
func ProjectRevenue(groups []entity.BookingGroup) Revenue {
	rev := Revenue{ByCurrency: make([]CurrencyRevenue, 0, len(groups))}
	for _, g := range groups {
		rev.ByCurrency = append(rev.ByCurrency, CurrencyRevenue{
			Currency:        g.Currency,
			TotalMinorUnits: g.TotalCents,
			MajorAmount:     RoundMajor(g.TotalCents),
			Bookings:        g.Bookings,
		})
		rev.OverallMinorUnits += g.TotalCents
	}
	rev.OverallMajorAmount = RoundMajor(rev.OverallMinorUnits)
	return rev
}

func ProjectMonths(groups []entity.BookingGroup) []MonthRevenue {
	months := make([]MonthRevenue, 0, len(groups))
	for _, g := range groups {
		months = append(months, MonthRevenue{
			Month:           g.Month,
			Currency:        g.Currency,
			TotalMinorUnits: g.TotalCents,
			MajorAmount:     RoundMajor(g.TotalCents),
			Bookings:        g.Bookings,
		})
	}
	return months
}

// ProjectCustomers reads the single ungrouped row; no rows means zero
func ProjectCustomers(groups []entity.BookingGroup) Customers {
	var c Customers
	for _, g := range groups {
		c.TotalTravelers += g.Travelers
		c.Bookings += g.Bookings
	}
	return c
}

// JoinTopPackage joins the first group to its package. It returns nil when
// there are no groups.
func JoinTopPackage(ctx context.Context, groups []entity.BookingGroup, lookup PackageLookup) (*TopPackage, error) {
	if len(groups) == 0 {
		return nil, nil
	}

	top := groups[0]
	result := &TopPackage{
		PackageID: top.PackageID,
		Bookings:  top.Bookings,
		Travelers: top.Travelers,
	}

	pkg, err := lookup(ctx, top.PackageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		result.Orphaned = true
		return result, nil
	}

	result.Slug = pkg.Slug
	result.Title = pkg.Title
	result.Image = pkg.Image
	return result, nil
}
