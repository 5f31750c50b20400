package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type PackageResponse struct {
	ID           string               `json:"id"`
	Slug         string               `json:"slug"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Currency     string               `json:"currency"`
	PriceCents   int64                `json:"priceCents"`
	PriceNU      int64                `json:"priceNU"`
	DurationDays int                  `json:"durationDays"`
	DurationText string               `json:"durationText"`
	Location     *string              `json:"location,omitempty"`
	Type         entity.PackageType   `json:"type"`
	Travelers    int                  `json:"travelers"`
	Image        *string              `json:"image,omitempty"`
	Includes     []string             `json:"includes"`
	Rating       float64              `json:"rating"`
	PriceDetails []entity.PriceDetail `json:"priceDetails"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

func PackageToResponse(p *entity.Package) PackageResponse {
	includes := p.Includes
	if includes == nil {
		includes = []string{}
	}
	details := p.PriceDetails
	if details == nil {
		details = []entity.PriceDetail{}
	}

	return PackageResponse{
		ID:           p.ID.String(),
		Slug:         p.Slug,
		Title:        p.Title,
		Description:  p.Description,
		Currency:     p.Currency,
		PriceCents:   p.PriceCents,
		PriceNU:      p.PriceMajor,
		DurationDays: p.DurationDays,
		DurationText: p.DurationText,
		Location:     p.Location,
		Type:         p.Type,
		Travelers:    p.Travelers,
		Image:        p.Image,
		Includes:     includes,
		Rating:       p.Rating,
		PriceDetails: details,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func PackagesToResponse(packages []*entity.Package) []PackageResponse {
	out := make([]PackageResponse, 0, len(packages))
	for _, p := range packages {
		out = append(out, PackageToResponse(p))
	}
	return out
}
