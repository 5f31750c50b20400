// Package analytics turns grouped confirmed-booking rows into the figures the
// stats endpoints report. Grouping happens in the database; ordering, limiting,
// joining and projection happen here as small composable stages so every
// caller shares the same pipeline.
package analytics

import (
	"cmp"
	"math"
	"slices"

	"tour-booking/internal/data/entity"
)

// Stage is one step of a rollup pipeline
type Stage func([]entity.BookingGroup) []entity.BookingGroup

// Order compares two groups; a negative result sorts a before b
type Order func(a, b entity.BookingGroup) int

// Run applies stages in order. The input slice is not modified.
func Run(groups []entity.BookingGroup, stages ...Stage) []entity.BookingGroup {
	out := slices.Clone(groups)
	for _, stage := range stages {
		out = stage(out)
	}
	return out
}

// SortBy stable-sorts by the first order that tells two groups apart
func SortBy(orders ...Order) Stage {
	return func(groups []entity.BookingGroup) []entity.BookingGroup {
		slices.SortStableFunc(groups, func(a, b entity.BookingGroup) int {
			for _, order := range orders {
				if c := order(a, b); c != 0 {
					return c
				}
			}
			return 0
		})
		return groups
	}
}

func Limit(n int) Stage {
	return func(groups []entity.BookingGroup) []entity.BookingGroup {
		if n < 0 || len(groups) <= n {
			return groups
		}
		return groups[:n]
	}
}

func TotalDesc(a, b entity.BookingGroup) int     { return cmp.Compare(b.TotalCents, a.TotalCents) }
func BookingsDesc(a, b entity.BookingGroup) int  { return cmp.Compare(b.Bookings, a.Bookings) }
func TravelersDesc(a, b entity.BookingGroup) int { return cmp.Compare(b.Travelers, a.Travelers) }
func MonthAsc(a, b entity.BookingGroup) int      { return cmp.Compare(a.Month, b.Month) }
func CurrencyAsc(a, b entity.BookingGroup) int   { return cmp.Compare(a.Currency, b.Currency) }

var (
	// RevenueOrder ranks currencies by summed amount
	RevenueOrder = []Stage{SortBy(TotalDesc)}
	// MostBookedOrder keeps the single busiest package; ties on bookings
	// fall back to travelers.
	MostBookedOrder = []Stage{SortBy(BookingsDesc, TravelersDesc), Limit(1)}
	MonthlyOrder    = []Stage{SortBy(MonthAsc, CurrencyAsc)}
)

// RoundMajor converts minor units to whole major units, halves rounding up
func RoundMajor(minor int64) int64 {
	return int64(math.Floor(float64(minor)/100 + 0.5))
}
