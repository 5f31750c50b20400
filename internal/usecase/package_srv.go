package usecase

//go:generate mockgen -source=package_srv.go -destination=mocks/package_srv_mock.go -package=mocks

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
	"tour-booking/pkg/cache"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	defaultPackageCurrency = "NU"
	defaultPackageRating   = 4.5
)

type PackageService interface {
	ListPackages(ctx context.Context) ([]response.PackageResponse, error)
	GetPackage(ctx context.Context, slug string) (*response.PackageResponse, error)
	CreatePackage(ctx context.Context, req *request.CreatePackageRequest) (*response.PackageResponse, error)
	UpdatePackage(ctx context.Context, slug string, req *request.UpdatePackageRequest) (*response.PackageResponse, error)
	DeletePackage(ctx context.Context, slug string) error
}

type packageService struct {
	repo  *repository.Repository
	cache cache.StatsCache
	log   *zap.Logger
}

func NewPackageService(repo *repository.Repository, statsCache cache.StatsCache, log *zap.Logger) PackageService {
	return &packageService{
		repo:  repo,
		cache: statsCache,
		log:   log.With(zap.String("service", "package")),
	}
}

func (s *packageService) ListPackages(ctx context.Context) ([]response.PackageResponse, error) {
	packages, err := s.repo.Package.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	return response.PackagesToResponse(packages), nil
}

func (s *packageService) GetPackage(ctx context.Context, slug string) (*response.PackageResponse, error) {
	pkg, err := s.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *packageService) CreatePackage(ctx context.Context, req *request.CreatePackageRequest) (*response.PackageResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create package validation failed", zap.Error(err))
		return nil, err
	}

	major, minor, err := NormalizeSubmittedPrice(req.PriceNU, req.PriceCents)
	if err != nil {
		return nil, err
	}

	days, ok := resolveDurationDays(req.DurationDays, req.DurationText)
	if !ok {
		return nil, fmt.Errorf("%w: durationDays or durationText (like '7D/6N') required", ErrInvalidInput)
	}

	durationText := strings.TrimSpace(req.DurationText)
	if durationText == "" {
		durationText = utils.DurationText(days)
	}

	travelers, err := positiveIntOr(req.Travelers, 1, "travelers")
	if err != nil {
		return nil, err
	}

	rating, err := ratingOr(req.Rating, defaultPackageRating)
	if err != nil {
		return nil, err
	}

	pkgType := entity.PackageTypeBeach
	if req.Type != "" {
		pkgType = entity.PackageType(req.Type)
	}

	includes := []string(req.Includes)
	if includes == nil {
		includes = []string{}
	}

	pkg := &entity.Package{
		Base:         entity.NewBase(time.Now()),
		Slug:         strings.TrimSpace(req.Slug),
		Title:        req.Title,
		Description:  req.Description,
		Currency:     firstNonEmpty(req.Currency, defaultPackageCurrency),
		PriceCents:   minor,
		PriceMajor:   major,
		DurationDays: days,
		DurationText: durationText,
		Location:     req.Location,
		Type:         pkgType,
		Travelers:    travelers,
		Image:        req.Image,
		Includes:     includes,
		Rating:       rating,
		PriceDetails: req.PriceDetails,
	}

	if err := s.repo.Package.Create(ctx, pkg); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: slug %s already exists", ErrConflict, pkg.Slug)
		}
		return nil, fmt.Errorf("create package: %w", err)
	}

	s.invalidateStats(ctx)
	s.log.Info("Package created", zap.String("slug", pkg.Slug), zap.String("package_id", pkg.ID.String()))

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *packageService) UpdatePackage(ctx context.Context, slug string, req *request.UpdatePackageRequest) (*response.PackageResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	pkg, err := s.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		pkg.Title = *req.Title
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Currency != nil {
		pkg.Currency = firstNonEmpty(*req.Currency, defaultPackageCurrency)
	}
	if req.PriceNU.Present || req.PriceCents.Present {
		major, minor, err := NormalizeSubmittedPrice(req.PriceNU, req.PriceCents)
		if err != nil {
			return nil, err
		}
		pkg.PriceMajor, pkg.PriceCents = major, minor
	}
	if req.DurationText != nil {
		pkg.DurationText = *req.DurationText
	}
	if req.DurationDays.Present || req.DurationText != nil {
		text := ""
		if req.DurationText != nil {
			text = *req.DurationText
		}
		if days, ok := resolveDurationDays(req.DurationDays, text); ok {
			pkg.DurationDays = days
		} else if req.DurationDays.Present {
			return nil, fmt.Errorf("%w: durationDays must be a positive integer", ErrInvalidInput)
		}
	}
	if req.Location != nil {
		pkg.Location = req.Location
	}
	if req.Type != nil {
		pkg.Type = entity.PackageType(*req.Type)
	}
	if req.Travelers.Present {
		if pkg.Travelers, err = positiveIntOr(req.Travelers, pkg.Travelers, "travelers"); err != nil {
			return nil, err
		}
	}
	if req.Image != nil {
		pkg.Image = req.Image
	}
	if req.Includes != nil {
		pkg.Includes = []string(*req.Includes)
	}
	if req.Rating.Present {
		if pkg.Rating, err = ratingOr(req.Rating, pkg.Rating); err != nil {
			return nil, err
		}
	}
	if req.PriceDetails != nil {
		pkg.PriceDetails = req.PriceDetails
	}
	pkg.UpdatedAt = time.Now()

	if err := s.repo.Package.Update(ctx, pkg); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: package %s not found", ErrNotFound, slug)
		}
		return nil, fmt.Errorf("update package: %w", err)
	}

	s.invalidateStats(ctx)

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

// DeletePackage leaves bookings that reference the package in place
func (s *packageService) DeletePackage(ctx context.Context, slug string) error {
	deleted, err := s.repo.Package.DeleteBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	if deleted == nil {
		return fmt.Errorf("%w: package %s not found", ErrNotFound, slug)
	}

	s.invalidateStats(ctx)
	return nil
}

func (s *packageService) findBySlug(ctx context.Context, slug string) (*entity.Package, error) {
	pkg, err := s.repo.Package.FindBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, fmt.Errorf("find package %s: %w", slug, err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("%w: package %s not found", ErrNotFound, slug)
	}
	return pkg, nil
}

func (s *packageService) invalidateStats(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("Failed to invalidate stats cache", zap.Error(err))
	}
}

// resolveDurationDays prefers an explicit day count, then parses text like "7D/6N"
func resolveDurationDays(days request.Number, text string) (int, bool) {
	if n, ok := days.Int(); ok && n > 0 {
		return int(n), true
	}
	return utils.ParseDurationDays(text)
}

func positiveIntOr(n request.Number, fallback int, field string) (int, error) {
	if !n.Present {
		return fallback, nil
	}
	v, ok := n.Int()
	if !ok || v < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidInput, field)
	}
	return int(v), nil
}

func ratingOr(n request.Number, fallback float64) (float64, error) {
	if !n.Present {
		return fallback, nil
	}
	if !n.Valid || n.Value < 0 || n.Value > 5 {
		return 0, fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}
	return n.Value, nil
}
