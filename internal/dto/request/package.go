package request

import "tour-booking/internal/data/entity"

type CreatePackageRequest struct {
	Slug         string               `json:"slug" validate:"required"`
	Title        string               `json:"title" validate:"required"`
	Description  string               `json:"description" validate:"required"`
	Currency     string               `json:"currency"`
	PriceNU      Number               `json:"priceNU"`
	PriceCents   Number               `json:"priceCents"`
	DurationDays Number               `json:"durationDays"`
	DurationText string               `json:"durationText"`
	Location     *string              `json:"location"`
	Type         string               `json:"type" validate:"omitempty,oneof=beach mountain cultural adventure luxury"`
	Travelers    Number               `json:"travelers"`
	Image        *string              `json:"image"`
	Includes     StringList           `json:"includes"`
	Rating       Number               `json:"rating"`
	PriceDetails []entity.PriceDetail `json:"priceDetails"`
}

// UpdatePackageRequest is a partial update; absent fields keep their value
type UpdatePackageRequest struct {
	Title        *string              `json:"title" validate:"omitempty,min=1"`
	Description  *string              `json:"description" validate:"omitempty,min=1"`
	Currency     *string              `json:"currency"`
	PriceNU      Number               `json:"priceNU"`
	PriceCents   Number               `json:"priceCents"`
	DurationDays Number               `json:"durationDays"`
	DurationText *string              `json:"durationText"`
	Location     *string              `json:"location"`
	Type         *string              `json:"type" validate:"omitempty,oneof=beach mountain cultural adventure luxury"`
	Travelers    Number               `json:"travelers"`
	Image        *string              `json:"image"`
	Includes     *StringList          `json:"includes"`
	Rating       Number               `json:"rating"`
	PriceDetails []entity.PriceDetail `json:"priceDetails"`
}
