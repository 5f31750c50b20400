package usecase

//go:generate mockgen -source=booking_srv.go -destination=mocks/booking_srv_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/cache"
	"tour-booking/pkg/metrics"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Public
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error)

	// Operator
	ListBookings(ctx context.Context, email string) ([]response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ConfirmBooking(ctx context.Context, bookingID, reason string) (*response.BookingResponse, error)
	RejectBooking(ctx context.Context, bookingID, reason string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	PatchBooking(ctx context.Context, bookingID string, req *request.PatchBookingRequest) (*response.BookingResponse, error)
	GetReceipt(ctx context.Context, bookingID string) (*response.Receipt, error)
}

type bookingService struct {
	repo            *repository.Repository
	cache           cache.StatsCache
	defaultCurrency string
	log             *zap.Logger
}

func NewBookingService(repo *repository.Repository, statsCache cache.StatsCache, cfg utils.BookingConfig, log *zap.Logger) BookingService {
	return &bookingService{
		repo:            repo,
		cache:           statsCache,
		defaultCurrency: cfg.DefaultCurrency,
		log:             log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	// Package must exist before anything else is looked at
	slug := strings.TrimSpace(req.PackageSlug)
	if slug == "" {
		return nil, fmt.Errorf("%w: package not found", ErrNotFound)
	}

	pkg, err := s.repo.Package.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("find package %s: %w", slug, err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("%w: package %s not found", ErrNotFound, slug)
	}

	// Travel date
	if strings.TrimSpace(req.Trip.TravelDate) == "" {
		return nil, fmt.Errorf("%w: travel date is required", ErrInvalidInput)
	}
	travelDate, err := utils.ParseDate(req.Trip.TravelDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid travel date %q", ErrInvalidInput, req.Trip.TravelDate)
	}

	// Travelers default to one when absent
	travelers := 1
	if req.Trip.Travelers.Present {
		n, ok := req.Trip.Travelers.Int()
		if !ok || n <= 0 || n > MaxTravelers {
			return nil, fmt.Errorf("%w: invalid number of travelers", ErrInvalidInput)
		}
		travelers = int(n)
	}

	if err := validate(req); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
		return nil, err
	}

	source := entity.BookingSourceWebForm
	if req.Source != "" {
		source = entity.BookingSource(req.Source)
	}

	pricing, err := DeriveBookingPricing(
		PackagePrice{BasePriceCents: pkg.PriceCents, Currency: pkg.Currency},
		travelers,
		req.Pricing,
		s.defaultCurrency,
	)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.PackageTitleSnapshot)
	if title == "" {
		title = pkg.Title
	}

	booking := &entity.Booking{
		Base:                 entity.NewBase(time.Now()),
		PackageID:            pkg.ID,
		PackageTitleSnapshot: title,
		Status:               entity.BookingStatusPending,
		Customer: entity.Customer{
			FirstName: strings.TrimSpace(req.Customer.FirstName),
			LastName:  strings.TrimSpace(req.Customer.LastName),
			Email:     normalizeEmail(req.Customer.Email),
			Phone:     strings.TrimSpace(req.Customer.Phone),
		},
		Trip: entity.Trip{
			TravelDate:      travelDate,
			Travelers:       travelers,
			SpecialRequests: req.Trip.SpecialRequests,
		},
		Pricing: pricing,
		Source:  source,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("package_slug", slug),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingsCreated.WithLabelValues(string(source)).Inc()
	s.invalidateStats(ctx)

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("package_slug", slug),
		zap.Int("travelers", travelers),
		zap.Int64("total_group_cents", pricing.TotalGroupCents),
		zap.String("currency", pricing.Currency),
	)

	resp := response.BookingCreatedToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, email string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID, reason string) (*response.BookingResponse, error) {
	return s.transition(ctx, bookingID, entity.BookingStatusConfirmed, reason)
}

func (s *bookingService) RejectBooking(ctx context.Context, bookingID, reason string) (*response.BookingResponse, error) {
	return s.transition(ctx, bookingID, entity.BookingStatusRejected, reason)
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	return s.transition(ctx, bookingID, entity.BookingStatusCancelled, "")
}

// transition overwrites the status whatever it was before
func (s *bookingService) transition(ctx context.Context, bookingID string, status entity.BookingStatus, reason string) (*response.BookingResponse, error) {
	id, err := parseBookingID(bookingID)
	if err != nil {
		return nil, err
	}

	change := entity.NewStatusChange(status, reason, time.Now())
	booking, err := s.repo.Booking.UpdateStatus(ctx, id, change)
	if err != nil {
		return nil, fmt.Errorf("set booking %s to %s: %w", bookingID, status, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s not found", ErrNotFound, bookingID)
	}

	metrics.BookingTransitions.WithLabelValues(string(status)).Inc()
	s.invalidateStats(ctx)

	s.log.Info("Booking status changed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("status", string(status)),
		zap.Bool("reason_recorded", change.Reason != nil),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) PatchBooking(ctx context.Context, bookingID string, req *request.PatchBookingRequest) (*response.BookingResponse, error) {
	id, err := parseBookingID(bookingID)
	if err != nil {
		return nil, err
	}

	if err := validate(req); err != nil {
		return nil, err
	}

	patch, err := buildBookingPatch(req)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: no editable fields supplied", ErrInvalidInput)
	}

	booking, err := s.repo.Booking.Patch(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("patch booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s not found", ErrNotFound, bookingID)
	}

	s.invalidateStats(ctx)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetReceipt(ctx context.Context, bookingID string) (*response.Receipt, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	body, filename, err := renderReceipt(booking, time.Now())
	if err != nil {
		s.log.Error("Failed to render receipt", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, err
	}

	return &response.Receipt{Filename: filename, Body: body}, nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := parseBookingID(bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s not found", ErrNotFound, bookingID)
	}

	return booking, nil
}

// invalidateStats never fails the write that triggered it
func (s *bookingService) invalidateStats(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("Failed to invalidate stats cache", zap.Error(err))
	}
}

// parseBookingID treats a malformed id as a booking that does not exist
func parseBookingID(bookingID string) (uuid.UUID, error) {
	id, err := utils.ParseUUID(bookingID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: booking %s not found", ErrNotFound, bookingID)
	}
	return id, nil
}

func buildBookingPatch(req *request.PatchBookingRequest) (entity.BookingPatch, error) {
	var patch entity.BookingPatch

	if c := req.Customer; c != nil {
		patch.FirstName = trimmed(c.FirstName)
		patch.LastName = trimmed(c.LastName)
		patch.Phone = trimmed(c.Phone)
		if c.Email != nil {
			email := normalizeEmail(*c.Email)
			patch.Email = &email
		}
	}

	if t := req.Trip; t != nil {
		if t.TravelDate != nil {
			date, err := utils.ParseDate(*t.TravelDate)
			if err != nil {
				return entity.BookingPatch{}, fmt.Errorf("%w: invalid travel date %q", ErrInvalidInput, *t.TravelDate)
			}
			patch.TravelDate = &date
		}
		patch.SpecialRequests = t.SpecialRequests
	}

	patch.AdminReason = req.AdminReason
	return patch, nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
