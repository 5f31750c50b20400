package usecase

import (
	"fmt"
	"math"
	"strings"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/dto/request"
)

// minorPerMajor is the fixed ratio between minor and major currency units
const minorPerMajor = 100

// MaxTravelers is the largest party the INT travelers column can hold
const MaxTravelers = math.MaxInt32

// maxMinorUnits is the first amount that no longer fits a BIGINT
const maxMinorUnits = float64(math.MaxInt64)

// roundHalfUp rounds to the nearest integer, halves toward +Inf
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// NormalizeSubmittedPrice resolves a package price given in either unit.
// When only one unit is sent the other is derived; when both are sent both
// are kept as given, even if they disagree.
func NormalizeSubmittedPrice(major, minor request.Number) (majorUnits, minorUnits int64, err error) {
	if (major.Valid && math.Abs(major.Value)*minorPerMajor >= maxMinorUnits) ||
		(minor.Valid && math.Abs(minor.Value) >= maxMinorUnits) {
		return 0, 0, fmt.Errorf("%w: price is out of range", ErrInvalidInput)
	}

	switch {
	case !major.Valid && !minor.Valid:
		return 0, 0, ErrMissingPrice
	case !major.Valid:
		majorUnits = roundHalfUp(minor.Value / minorPerMajor)
		minorUnits = roundHalfUp(minor.Value)
	case !minor.Valid:
		majorUnits = roundHalfUp(major.Value)
		minorUnits = roundHalfUp(major.Value * minorPerMajor)
	default:
		majorUnits = roundHalfUp(major.Value)
		minorUnits = roundHalfUp(minor.Value)
	}

	if majorUnits < 0 || minorUnits < 0 {
		return 0, 0, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	return majorUnits, minorUnits, nil
}

// PackagePrice is the part of a package that booking pricing depends on
type PackagePrice struct {
	BasePriceCents int64
	Currency       string
}

// DeriveBookingPricing computes the frozen price breakdown of a booking.
// Every override that is present and numeric wins over its derived default.
func DeriveBookingPricing(pkg PackagePrice, travelers int, overrides request.PricingOverrides, fallbackCurrency string) (entity.Pricing, error) {
	if travelers < 1 || travelers > MaxTravelers {
		return entity.Pricing{}, fmt.Errorf("%w: travelers must be between 1 and %d", ErrInvalidInput, MaxTravelers)
	}
	if pkg.BasePriceCents > 0 && int64(travelers) > math.MaxInt64/pkg.BasePriceCents {
		return entity.Pricing{}, fmt.Errorf("%w: group total is out of range", ErrInvalidInput)
	}

	fallbackTotal := int64(travelers) * pkg.BasePriceCents

	pricing := entity.Pricing{
		Currency:            firstNonEmpty(overrides.Currency, pkg.Currency, fallbackCurrency),
		PackagePriceCents:   fallbackTotal,
		SDFFeeCents:         0,
		TotalPerPersonCents: roundHalfUp(float64(fallbackTotal) / float64(travelers)),
		TotalGroupCents:     fallbackTotal,
	}

	fields := []struct {
		name  string
		value request.Number
		dst   *int64
	}{
		{"packagePriceCents", overrides.PackagePriceCents, &pricing.PackagePriceCents},
		{"sdfFeeCents", overrides.SDFFeeCents, &pricing.SDFFeeCents},
		{"totalPerPersonCents", overrides.TotalPerPersonCents, &pricing.TotalPerPersonCents},
		{"totalGroupCents", overrides.TotalGroupCents, &pricing.TotalGroupCents},
	}
	for _, f := range fields {
		if !f.value.Valid {
			continue
		}
		if f.value.Value >= maxMinorUnits {
			return entity.Pricing{}, fmt.Errorf("%w: pricing.%s is out of range", ErrInvalidInput, f.name)
		}
		v := roundHalfUp(f.value.Value)
		if v < 0 {
			return entity.Pricing{}, fmt.Errorf("%w: pricing.%s must not be negative", ErrInvalidInput, f.name)
		}
		*f.dst = v
	}

	return pricing, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
