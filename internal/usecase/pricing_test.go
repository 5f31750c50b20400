package usecase

import (
	"errors"
	"math"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/dto/request"
)

func TestNormalizeSubmittedPrice(t *testing.T) {
	var none request.Number
	invalid := request.Number{Present: true}

	cases := []struct {
		name      string
		major     request.Number
		minor     request.Number
		wantMajor int64
		wantMinor int64
		wantErr   error
	}{
		{name: "neither", major: none, minor: none, wantErr: ErrInvalidInput},
		{name: "both non numeric", major: invalid, minor: invalid, wantErr: ErrInvalidInput},
		{name: "minor only", major: none, minor: request.Num(12345), wantMajor: 123, wantMinor: 12345},
		{name: "minor only rounds half up", major: none, minor: request.Num(150), wantMajor: 2, wantMinor: 150},
		{name: "major only", major: request.Num(900), minor: none, wantMajor: 900, wantMinor: 90000},
		{name: "fractional major", major: request.Num(12.75), minor: none, wantMajor: 13, wantMinor: 1275},
		{name: "non numeric major falls back to minor", major: invalid, minor: request.Num(500), wantMajor: 5, wantMinor: 500},
		{name: "both kept without cross check", major: request.Num(10), minor: request.Num(99999), wantMajor: 10, wantMinor: 99999},
		{name: "negative", major: request.Num(-1), minor: none, wantErr: ErrInvalidInput},
		{name: "major beyond BIGINT in minor units", major: request.Num(1e17), minor: none, wantErr: ErrInvalidInput},
		{name: "minor beyond BIGINT", major: none, minor: request.Num(1e19), wantErr: ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			major, minor, err := NormalizeSubmittedPrice(tc.major, tc.minor)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if major != tc.wantMajor || minor != tc.wantMinor {
				t.Fatalf("got (%d, %d), want (%d, %d)", major, minor, tc.wantMajor, tc.wantMinor)
			}
		})
	}
}

func TestDeriveBookingPricing(t *testing.T) {
	pkg := PackagePrice{BasePriceCents: 90000, Currency: "NU"}

	t.Run("defaults for three travelers", func(t *testing.T) {
		got, err := DeriveBookingPricing(pkg, 3, request.PricingOverrides{}, "USD")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := entity.Pricing{
			Currency:            "NU",
			PackagePriceCents:   270000,
			SDFFeeCents:         0,
			TotalPerPersonCents: 90000,
			TotalGroupCents:     270000,
		}
		if got != want {
			t.Fatalf("got %+v, want %+v", got, want)
		}
	})

	t.Run("group total matches per person times travelers", func(t *testing.T) {
		for travelers := 1; travelers <= 12; travelers++ {
			got, err := DeriveBookingPricing(PackagePrice{BasePriceCents: 33333}, travelers, request.PricingOverrides{}, "USD")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			diff := got.TotalGroupCents - got.TotalPerPersonCents*int64(travelers)
			if diff < -1 || diff > 1 {
				t.Fatalf("travelers=%d: group %d vs per person %d", travelers, got.TotalGroupCents, got.TotalPerPersonCents)
			}
			if got.TotalGroupCents != got.PackagePriceCents {
				t.Fatalf("travelers=%d: group %d != package %d", travelers, got.TotalGroupCents, got.PackagePriceCents)
			}
		}
	})

	t.Run("overrides pass through", func(t *testing.T) {
		got, err := DeriveBookingPricing(pkg, 2, request.PricingOverrides{
			Currency:            "USD",
			PackagePriceCents:   request.Num(1000),
			SDFFeeCents:         request.Num(250),
			TotalPerPersonCents: request.Num(1250),
			TotalGroupCents:     request.Num(2500),
		}, "USD")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := entity.Pricing{
			Currency:            "USD",
			PackagePriceCents:   1000,
			SDFFeeCents:         250,
			TotalPerPersonCents: 1250,
			TotalGroupCents:     2500,
		}
		if got != want {
			t.Fatalf("got %+v, want %+v", got, want)
		}
	})

	t.Run("zero override is kept", func(t *testing.T) {
		got, err := DeriveBookingPricing(pkg, 1, request.PricingOverrides{TotalGroupCents: request.Num(0)}, "USD")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalGroupCents != 0 || got.PackagePriceCents != 90000 {
			t.Fatalf("unexpected pricing: %+v", got)
		}
	})

	t.Run("non numeric override uses default", func(t *testing.T) {
		got, err := DeriveBookingPricing(pkg, 1, request.PricingOverrides{SDFFeeCents: request.Number{Present: true}}, "USD")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.SDFFeeCents != 0 {
			t.Fatalf("expected default sdf fee, got %d", got.SDFFeeCents)
		}
	})

	t.Run("negative override rejected", func(t *testing.T) {
		_, err := DeriveBookingPricing(pkg, 1, request.PricingOverrides{SDFFeeCents: request.Num(-5)}, "USD")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("travelers above INT range rejected", func(t *testing.T) {
		_, err := DeriveBookingPricing(pkg, MaxTravelers+1, request.PricingOverrides{}, "USD")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("group total overflow rejected", func(t *testing.T) {
		huge := PackagePrice{BasePriceCents: math.MaxInt64 / 2, Currency: "USD"}
		_, err := DeriveBookingPricing(huge, 3, request.PricingOverrides{}, "USD")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("largest party at a normal price is accepted", func(t *testing.T) {
		got, err := DeriveBookingPricing(pkg, MaxTravelers, request.PricingOverrides{}, "USD")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalGroupCents != int64(MaxTravelers)*pkg.BasePriceCents {
			t.Fatalf("unexpected group total %d", got.TotalGroupCents)
		}
	})

	t.Run("override beyond BIGINT rejected", func(t *testing.T) {
		_, err := DeriveBookingPricing(pkg, 1, request.PricingOverrides{TotalGroupCents: request.Num(1e19)}, "USD")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("currency falls back", func(t *testing.T) {
		got, err := DeriveBookingPricing(PackagePrice{BasePriceCents: 100}, 1, request.PricingOverrides{}, "USD")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Currency != "USD" {
			t.Fatalf("expected USD, got %s", got.Currency)
		}
	})
}
