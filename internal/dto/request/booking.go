package request

type CustomerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
}

type TripRequest struct {
	TravelDate      string `json:"travelDate"`
	Travelers       Number `json:"travelers"`
	SpecialRequests string `json:"specialRequests"`
}

// PricingOverrides replace derived pricing fields when present and numeric
type PricingOverrides struct {
	Currency            string `json:"currency"`
	PackagePriceCents   Number `json:"packagePriceCents"`
	SDFFeeCents         Number `json:"sdfFeeCents"`
	TotalPerPersonCents Number `json:"totalPerPersonCents"`
	TotalGroupCents     Number `json:"totalGroupCents"`
}

type CreateBookingRequest struct {
	PackageSlug          string           `json:"package_slug"`
	PackageTitleSnapshot string           `json:"packageTitleSnapshot"`
	Customer             CustomerRequest  `json:"customer"`
	Trip                 TripRequest      `json:"trip"`
	Pricing              PricingOverrides `json:"pricing"`
	Source               string           `json:"source" validate:"omitempty,oneof=WEB_FORM WHATSAPP"`
}

type StatusReasonRequest struct {
	Reason string `json:"reason"`
}

type PatchCustomerRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
}

type PatchTripRequest struct {
	TravelDate      *string `json:"travelDate"`
	SpecialRequests *string `json:"specialRequests"`
}

// PatchBookingRequest lists the fields an operator may edit. Pricing, status
// and package are not editable.
type PatchBookingRequest struct {
	Customer    *PatchCustomerRequest `json:"customer"`
	Trip        *PatchTripRequest     `json:"trip"`
	AdminReason *string               `json:"adminReason"`
}
