package usecase

import (
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/cache"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Booking BookingService
	Stats   StatsService
	Package PackageService
	Content ContentService
}

func NewService(repo *repository.Repository, statsCache cache.StatsCache, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Booking: NewBookingService(repo, statsCache, config.Booking, log),
		Stats:   NewStatsService(repo, statsCache, log),
		Package: NewPackageService(repo, statsCache, log),
		Content: NewContentService(repo, log),
	}
}
