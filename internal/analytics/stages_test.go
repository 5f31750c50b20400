package analytics

import (
	"context"
	"errors"
	"testing"

	"tour-booking/internal/data/entity"

	"github.com/google/uuid"
)

func TestRoundMajor(t *testing.T) {
	cases := []struct {
		minor int64
		want  int64
	}{
		{0, 0},
		{49, 0},
		{50, 1},
		{149, 1},
		{150, 2},
		{270000, 2700},
		{12345, 123},
	}

	for _, tc := range cases {
		if got := RoundMajor(tc.minor); got != tc.want {
			t.Fatalf("RoundMajor(%d) = %d, want %d", tc.minor, got, tc.want)
		}
	}
}

func TestRunRevenueOrder(t *testing.T) {
	groups := []entity.BookingGroup{
		{Currency: "USD", TotalCents: 1000, Bookings: 1},
		{Currency: "NU", TotalCents: 270000, Bookings: 2},
		{Currency: "UNKNOWN", TotalCents: 5000, Bookings: 1},
	}

	out := Run(groups, RevenueOrder...)
	if out[0].Currency != "NU" || out[1].Currency != "UNKNOWN" || out[2].Currency != "USD" {
		t.Fatalf("unexpected order: %+v", out)
	}
	if groups[0].Currency != "USD" {
		t.Fatalf("input slice was modified")
	}

	rev := ProjectRevenue(out)
	if rev.OverallMinorUnits != 276000 || rev.OverallMajorAmount != 2760 {
		t.Fatalf("unexpected overall: %+v", rev)
	}
	if rev.ByCurrency[0].MajorAmount != 2700 || rev.ByCurrency[0].Bookings != 2 {
		t.Fatalf("unexpected first currency: %+v", rev.ByCurrency[0])
	}
}

func TestRunMostBookedOrder(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	t.Run("bookings first", func(t *testing.T) {
		out := Run([]entity.BookingGroup{
			{PackageID: a, Bookings: 1, Travelers: 10},
			{PackageID: b, Bookings: 3, Travelers: 3},
			{PackageID: c, Bookings: 2, Travelers: 8},
		}, MostBookedOrder...)
		if len(out) != 1 || out[0].PackageID != b {
			t.Fatalf("expected package b, got %+v", out)
		}
	})

	t.Run("travelers break ties", func(t *testing.T) {
		out := Run([]entity.BookingGroup{
			{PackageID: a, Bookings: 2, Travelers: 4},
			{PackageID: b, Bookings: 2, Travelers: 9},
		}, MostBookedOrder...)
		if len(out) != 1 || out[0].PackageID != b {
			t.Fatalf("expected package b, got %+v", out)
		}
	})

	t.Run("empty stays empty", func(t *testing.T) {
		if out := Run(nil, MostBookedOrder...); len(out) != 0 {
			t.Fatalf("expected no groups, got %+v", out)
		}
	})
}

func TestRunMonthlyOrder(t *testing.T) {
	out := Run([]entity.BookingGroup{
		{Month: "2024-04", Currency: "NU", TotalCents: 10000, Bookings: 1},
		{Month: "2024-03", Currency: "USD", TotalCents: 20000, Bookings: 1},
		{Month: "2024-03", Currency: "NU", TotalCents: 50000, Bookings: 2},
	}, MonthlyOrder...)

	months := ProjectMonths(out)
	want := []struct {
		month, currency string
		total           int64
	}{
		{"2024-03", "NU", 50000},
		{"2024-03", "USD", 20000},
		{"2024-04", "NU", 10000},
	}
	for i, w := range want {
		if months[i].Month != w.month || months[i].Currency != w.currency || months[i].TotalMinorUnits != w.total {
			t.Fatalf("row %d: got %+v, want %+v", i, months[i], w)
		}
	}
	if months[0].MajorAmount != 500 || months[0].Bookings != 2 {
		t.Fatalf("unexpected projection: %+v", months[0])
	}
}

func TestProjectCustomers(t *testing.T) {
	if c := ProjectCustomers(nil); c.TotalTravelers != 0 || c.Bookings != 0 {
		t.Fatalf("expected zero customers, got %+v", c)
	}

	c := ProjectCustomers([]entity.BookingGroup{{Travelers: 7, Bookings: 3}})
	if c.TotalTravelers != 7 || c.Bookings != 3 {
		t.Fatalf("unexpected customers: %+v", c)
	}
}

func TestJoinTopPackage(t *testing.T) {
	id := uuid.New()
	groups := []entity.BookingGroup{{PackageID: id, Bookings: 4, Travelers: 11}}
	image := "https://img.example/paro.jpg"

	t.Run("no groups", func(t *testing.T) {
		top, err := JoinTopPackage(context.Background(), nil, func(context.Context, uuid.UUID) (*entity.Package, error) {
			t.Fatalf("lookup must not run")
			return nil, nil
		})
		if err != nil || top != nil {
			t.Fatalf("expected nil result, got %+v, %v", top, err)
		}
	})

	t.Run("joined", func(t *testing.T) {
		top, err := JoinTopPackage(context.Background(), groups, func(_ context.Context, got uuid.UUID) (*entity.Package, error) {
			if got != id {
				t.Fatalf("unexpected lookup id %s", got)
			}
			return &entity.Package{Slug: "paro-valley", Title: "Paro Valley", Image: &image}, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if top.Slug != "paro-valley" || top.Title != "Paro Valley" || top.Image == nil || top.Orphaned {
			t.Fatalf("unexpected top package: %+v", top)
		}
		if top.Bookings != 4 || top.Travelers != 11 || top.PackageID != id {
			t.Fatalf("unexpected counts: %+v", top)
		}
	})

	t.Run("orphaned package", func(t *testing.T) {
		top, err := JoinTopPackage(context.Background(), groups, func(context.Context, uuid.UUID) (*entity.Package, error) {
			return nil, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !top.Orphaned || top.Slug != "" || top.Bookings != 4 {
			t.Fatalf("unexpected orphan result: %+v", top)
		}
	})

	t.Run("lookup error", func(t *testing.T) {
		_, err := JoinTopPackage(context.Background(), groups, func(context.Context, uuid.UUID) (*entity.Package, error) {
			return nil, errors.New("db")
		})
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}
