package request

type CreateEventRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Date        string  `json:"date" validate:"required"`
	Location    *string `json:"location"`
	Image       *string `json:"image"`
}

type CreateFAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type GalleryImageRequest struct {
	URL string `json:"url" validate:"required"`
}

type CreateTestimonialRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Package  string `json:"package" validate:"required"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Text     string `json:"text" validate:"required"`
	Avatar   string `json:"avatar" validate:"required"`
}
