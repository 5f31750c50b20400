package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    *string   `json:"location,omitempty"`
	Image       *string   `json:"image,omitempty"`
}

type FAQResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type GalleryResponse struct {
	Images    []string  `json:"images"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TestimonialResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Package   string    `json:"package"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// Helper converters
func EventToResponse(e *entity.Event) EventResponse {
	return EventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		Image:       e.Image,
	}
}

func FAQToResponse(f *entity.FAQ) FAQResponse {
	return FAQResponse{ID: f.ID.String(), Question: f.Question, Answer: f.Answer}
}

func GalleryToResponse(g *entity.Gallery) GalleryResponse {
	images := g.Images
	if images == nil {
		images = []string{}
	}
	return GalleryResponse{Images: images, UpdatedAt: g.UpdatedAt}
}

func TestimonialToResponse(t *entity.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Location:  t.Location,
		Package:   t.Package,
		Rating:    t.Rating,
		Text:      t.Text,
		Avatar:    t.Avatar,
		CreatedAt: t.CreatedAt,
	}
}
