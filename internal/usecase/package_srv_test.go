package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	repomocks "tour-booking/internal/data/repository/mocks"
	"tour-booking/internal/dto/request"
	cachemocks "tour-booking/pkg/cache/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type packageFixture struct {
	svc      PackageService
	packages *repomocks.MockPackageRepository
	cache    *cachemocks.MockStatsCache
}

func newPackageFixture(t *testing.T) packageFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := packageFixture{
		packages: repomocks.NewMockPackageRepository(ctrl),
		cache:    cachemocks.NewMockStatsCache(ctrl),
	}
	f.svc = NewPackageService(&repository.Repository{Package: f.packages}, f.cache, zap.NewNop())
	return f
}

func createPackageRequest() *request.CreatePackageRequest {
	return &request.CreatePackageRequest{
		Slug:         "paro-valley",
		Title:        "Paro Valley Escape",
		Description:  "Five days in the Paro valley",
		PriceNU:      request.Num(900),
		DurationText: "5D/4N",
		Includes:     request.StringList{"Guide", "Meals"},
	}
}

func TestPackageService_CreatePackage(t *testing.T) {
	ctx := context.Background()

	t.Run("fills defaults and derives the minor price", func(t *testing.T) {
		f := newPackageFixture(t)

		var stored *entity.Package
		f.packages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *entity.Package) error {
			stored = p
			return nil
		})
		f.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		resp, err := f.svc.CreatePackage(ctx, createPackageRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if stored.PriceCents != 90000 || stored.PriceMajor != 900 {
			t.Fatalf("expected 900 NU / 90000 cents, got %d / %d", stored.PriceMajor, stored.PriceCents)
		}
		if stored.Currency != "NU" || stored.Type != entity.PackageTypeBeach || stored.Travelers != 1 || stored.Rating != 4.5 {
			t.Fatalf("unexpected defaults %+v", stored)
		}
		if stored.DurationDays != 5 || stored.DurationText != "5D/4N" {
			t.Fatalf("expected duration from text, got %d %q", stored.DurationDays, stored.DurationText)
		}
		if resp.Slug != "paro-valley" {
			t.Fatalf("unexpected response %+v", resp)
		}
	})

	t.Run("duration text from days", func(t *testing.T) {
		f := newPackageFixture(t)

		req := createPackageRequest()
		req.DurationText = ""
		req.DurationDays = request.Num(7)

		var stored *entity.Package
		f.packages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *entity.Package) error {
			stored = p
			return nil
		})
		f.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		if _, err := f.svc.CreatePackage(ctx, req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.DurationText != "7D/6N" {
			t.Fatalf("expected 7D/6N, got %q", stored.DurationText)
		}
	})

	t.Run("missing price", func(t *testing.T) {
		f := newPackageFixture(t)

		req := createPackageRequest()
		req.PriceNU = request.Number{}

		_, err := f.svc.CreatePackage(ctx, req)
		if !errors.Is(err, ErrMissingPrice) || !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrMissingPrice, got %v", err)
		}
	})

	t.Run("missing duration", func(t *testing.T) {
		f := newPackageFixture(t)

		req := createPackageRequest()
		req.DurationText = "a week"

		_, err := f.svc.CreatePackage(ctx, req)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rating out of range", func(t *testing.T) {
		f := newPackageFixture(t)

		req := createPackageRequest()
		req.Rating = request.Num(6)

		_, err := f.svc.CreatePackage(ctx, req)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("duplicate slug", func(t *testing.T) {
		f := newPackageFixture(t)
		f.packages.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)

		_, err := f.svc.CreatePackage(ctx, createPackageRequest())
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestPackageService_UpdatePackage(t *testing.T) {
	ctx := context.Background()

	existing := func() *entity.Package {
		return &entity.Package{
			Base:         entity.NewBase(time.Now().Add(-time.Hour)),
			Slug:         "paro-valley",
			Title:        "Paro Valley Escape",
			Currency:     "NU",
			PriceCents:   90000,
			PriceMajor:   900,
			DurationDays: 5,
			DurationText: "5D/4N",
			Travelers:    2,
			Rating:       4.5,
		}
	}

	t.Run("renormalizes price when either unit is sent", func(t *testing.T) {
		f := newPackageFixture(t)
		pkg := existing()

		f.packages.EXPECT().FindBySlug(gomock.Any(), "paro-valley").Return(pkg, nil)
		f.packages.EXPECT().Update(gomock.Any(), pkg).Return(nil)
		f.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		title := "Paro in Spring"
		resp, err := f.svc.UpdatePackage(ctx, "paro-valley", &request.UpdatePackageRequest{
			Title:      &title,
			PriceCents: request.Num(125050),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pkg.PriceCents != 125050 || pkg.PriceMajor != 1251 {
			t.Fatalf("expected 125050 cents / 1251 NU, got %d / %d", pkg.PriceCents, pkg.PriceMajor)
		}
		if resp.Title != "Paro in Spring" || pkg.Travelers != 2 {
			t.Fatalf("unexpected update result %+v", resp)
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		f := newPackageFixture(t)
		f.packages.EXPECT().FindBySlug(gomock.Any(), "nowhere").Return(nil, nil)

		_, err := f.svc.UpdatePackage(ctx, "nowhere", &request.UpdatePackageRequest{})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("bad travelers", func(t *testing.T) {
		f := newPackageFixture(t)
		f.packages.EXPECT().FindBySlug(gomock.Any(), "paro-valley").Return(existing(), nil)

		_, err := f.svc.UpdatePackage(ctx, "paro-valley", &request.UpdatePackageRequest{Travelers: request.Num(0)})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestPackageService_DeletePackage(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and invalidates stats", func(t *testing.T) {
		f := newPackageFixture(t)
		f.packages.EXPECT().DeleteBySlug(gomock.Any(), "paro-valley").Return(&entity.Package{Slug: "paro-valley"}, nil)
		f.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		if err := f.svc.DeletePackage(ctx, "paro-valley"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		f := newPackageFixture(t)
		f.packages.EXPECT().DeleteBySlug(gomock.Any(), "nowhere").Return(nil, nil)

		if err := f.svc.DeletePackage(ctx, "nowhere"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
