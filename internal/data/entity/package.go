package entity

type PackageType string

const (
	PackageTypeBeach     PackageType = "beach"
	PackageTypeMountain  PackageType = "mountain"
	PackageTypeCultural  PackageType = "cultural"
	PackageTypeAdventure PackageType = "adventure"
	PackageTypeLuxury    PackageType = "luxury"
)

// PriceDetail is one row of the price table shown on the package page
type PriceDetail struct {
	Package        string  `json:"package"`
	Days           int     `json:"days"`
	GroupSize      string  `json:"groupSize"`
	TourPrice      float64 `json:"tourPrice"`
	SDF            float64 `json:"sdf"`
	TotalPerPerson float64 `json:"totalPerPerson"`
}

// Package keeps the price twice: PriceCents (minor units) and PriceMajor
// (major units). The two are not cross-checked; callers may desynchronize them.
type Package struct {
	Base
	Slug         string        `db:"slug"`
	Title        string        `db:"title"`
	Description  string        `db:"description"`
	Currency     string        `db:"currency"`
	PriceCents   int64         `db:"price_cents"`
	PriceMajor   int64         `db:"price_major"`
	DurationDays int           `db:"duration_days"`
	DurationText string        `db:"duration_text"`
	Location     *string       `db:"location"`
	Type         PackageType   `db:"type"`
	Travelers    int           `db:"travelers"`
	Image        *string       `db:"image"`
	Includes     []string      `db:"includes"`
	Rating       float64       `db:"rating"`
	PriceDetails []PriceDetail `db:"price_details"`
}
