package usecase

//go:generate mockgen -source=content_srv.go -destination=mocks/content_srv_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

// ContentService covers the site content around the catalogue: events,
// FAQs, the gallery and testimonials.
type ContentService interface {
	ListEvents(ctx context.Context) ([]response.EventResponse, error)
	CreateEvent(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error)
	DeleteEvent(ctx context.Context, id string) error

	ListFAQs(ctx context.Context) ([]response.FAQResponse, error)
	CreateFAQ(ctx context.Context, req *request.CreateFAQRequest) (*response.FAQResponse, error)
	DeleteFAQ(ctx context.Context, id string) error

	GetGallery(ctx context.Context) (*response.GalleryResponse, error)
	AddGalleryImage(ctx context.Context, req *request.GalleryImageRequest) (*response.GalleryResponse, error)
	RemoveGalleryImage(ctx context.Context, req *request.GalleryImageRequest) (*response.GalleryResponse, error)

	ListTestimonials(ctx context.Context) ([]response.TestimonialResponse, error)
	CreateTestimonial(ctx context.Context, req *request.CreateTestimonialRequest) (*response.TestimonialResponse, error)
	DeleteTestimonial(ctx context.Context, id string) error
}

type contentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContentService(repo *repository.Repository, log *zap.Logger) ContentService {
	return &contentService{
		repo: repo,
		log:  log.With(zap.String("service", "content")),
	}
}

// ==================== EVENTS ====================

func (s *contentService) ListEvents(ctx context.Context) ([]response.EventResponse, error) {
	events, err := s.repo.Event.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]response.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, response.EventToResponse(e))
	}
	return out, nil
}

func (s *contentService) CreateEvent(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event date %q", ErrInvalidInput, req.Date)
	}

	event := &entity.Event{
		Base:        entity.NewBase(time.Now()),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
		Image:       req.Image,
	}

	if err := s.repo.Event.Create(ctx, event); err != nil {
		return nil, err
	}

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *contentService) DeleteEvent(ctx context.Context, id string) error {
	eventID, err := utils.ParseUUID(id)
	if err != nil {
		return fmt.Errorf("%w: event %s not found", ErrNotFound, id)
	}
	return mapNotFound(s.repo.Event.Delete(ctx, eventID), "event", id)
}

// ==================== FAQS ====================

func (s *contentService) ListFAQs(ctx context.Context) ([]response.FAQResponse, error) {
	faqs, err := s.repo.FAQ.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}

	out := make([]response.FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, response.FAQToResponse(f))
	}
	return out, nil
}

func (s *contentService) CreateFAQ(ctx context.Context, req *request.CreateFAQRequest) (*response.FAQResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	faq := &entity.FAQ{
		Base:     entity.NewBase(time.Now()),
		Question: strings.TrimSpace(req.Question),
		Answer:   strings.TrimSpace(req.Answer),
	}

	if err := s.repo.FAQ.Create(ctx, faq); err != nil {
		return nil, err
	}

	resp := response.FAQToResponse(faq)
	return &resp, nil
}

func (s *contentService) DeleteFAQ(ctx context.Context, id string) error {
	faqID, err := utils.ParseUUID(id)
	if err != nil {
		return fmt.Errorf("%w: faq %s not found", ErrNotFound, id)
	}
	return mapNotFound(s.repo.FAQ.Delete(ctx, faqID), "faq", id)
}

// ==================== GALLERY ====================

func (s *contentService) GetGallery(ctx context.Context) (*response.GalleryResponse, error) {
	gallery, err := s.repo.Gallery.Get(ctx)
	if err != nil {
		return nil, err
	}

	resp := response.GalleryToResponse(gallery)
	return &resp, nil
}

func (s *contentService) AddGalleryImage(ctx context.Context, req *request.GalleryImageRequest) (*response.GalleryResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	gallery, err := s.repo.Gallery.AddImage(ctx, strings.TrimSpace(req.URL), time.Now())
	if err != nil {
		return nil, err
	}

	resp := response.GalleryToResponse(gallery)
	return &resp, nil
}

func (s *contentService) RemoveGalleryImage(ctx context.Context, req *request.GalleryImageRequest) (*response.GalleryResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	url := strings.TrimSpace(req.URL)
	gallery, err := s.repo.Gallery.RemoveImage(ctx, url, time.Now())
	if err != nil {
		return nil, mapNotFound(err, "gallery image", url)
	}

	resp := response.GalleryToResponse(gallery)
	return &resp, nil
}

// ==================== TESTIMONIALS ====================

func (s *contentService) ListTestimonials(ctx context.Context) ([]response.TestimonialResponse, error) {
	testimonials, err := s.repo.Testimonial.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}

	out := make([]response.TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		out = append(out, response.TestimonialToResponse(t))
	}
	return out, nil
}

func (s *contentService) CreateTestimonial(ctx context.Context, req *request.CreateTestimonialRequest) (*response.TestimonialResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	testimonial := &entity.Testimonial{
		Base:     entity.NewBase(time.Now()),
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
		Package:  strings.TrimSpace(req.Package),
		Rating:   req.Rating,
		Text:     req.Text,
		Avatar:   strings.TrimSpace(req.Avatar),
	}

	if err := s.repo.Testimonial.Create(ctx, testimonial); err != nil {
		return nil, err
	}

	resp := response.TestimonialToResponse(testimonial)
	return &resp, nil
}

func (s *contentService) DeleteTestimonial(ctx context.Context, id string) error {
	testimonialID, err := utils.ParseUUID(id)
	if err != nil {
		return fmt.Errorf("%w: testimonial %s not found", ErrNotFound, id)
	}
	return mapNotFound(s.repo.Testimonial.Delete(ctx, testimonialID), "testimonial", id)
}

// mapNotFound turns a repository miss into the service-level ErrNotFound
func mapNotFound(err error, kind, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s %s not found", ErrNotFound, kind, id)
	}
	return err
}
