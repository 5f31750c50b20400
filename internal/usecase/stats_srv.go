package usecase

//go:generate mockgen -source=stats_srv.go -destination=mocks/stats_srv_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tour-booking/internal/analytics"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/cache"
	"tour-booking/pkg/metrics"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StatsService reports rollups over CONFIRMED bookings only
type StatsService interface {
	TotalPackages(ctx context.Context) (*response.TotalResponse, error)
	ConfirmedBookings(ctx context.Context) (*response.TotalResponse, error)
	TotalRevenue(ctx context.Context) (*response.RevenueResponse, error)
	TotalCustomers(ctx context.Context) (*response.CustomersResponse, error)
	MostBookedPackage(ctx context.Context) (*response.MostBookedPackageResponse, error)
	RevenueByMonth(ctx context.Context, from, to string) ([]response.MonthRevenueResponse, error)
	Overview(ctx context.Context) (*response.OverviewResponse, error)
}

type statsService struct {
	repo  *repository.Repository
	cache cache.StatsCache
	log   *zap.Logger
}

func NewStatsService(repo *repository.Repository, statsCache cache.StatsCache, log *zap.Logger) StatsService {
	return &statsService{
		repo:  repo,
		cache: statsCache,
		log:   log.With(zap.String("service", "stats")),
	}
}

func (s *statsService) TotalPackages(ctx context.Context) (*response.TotalResponse, error) {
	return cached(ctx, s, "total-packages", func(ctx context.Context) (*response.TotalResponse, error) {
		total, err := s.packageCount(ctx)
		if err != nil {
			return nil, err
		}
		return &response.TotalResponse{Total: total}, nil
	})
}

func (s *statsService) ConfirmedBookings(ctx context.Context) (*response.TotalResponse, error) {
	return cached(ctx, s, "confirmed-bookings", func(ctx context.Context) (*response.TotalResponse, error) {
		customers, err := s.customers(ctx)
		if err != nil {
			return nil, err
		}
		return &response.TotalResponse{Total: customers.Bookings}, nil
	})
}

func (s *statsService) TotalRevenue(ctx context.Context) (*response.RevenueResponse, error) {
	return cached(ctx, s, "total-revenue", func(ctx context.Context) (*response.RevenueResponse, error) {
		rev, err := s.revenue(ctx)
		if err != nil {
			return nil, err
		}
		resp := response.RevenueToResponse(rev)
		return &resp, nil
	})
}

func (s *statsService) TotalCustomers(ctx context.Context) (*response.CustomersResponse, error) {
	return cached(ctx, s, "total-customers", func(ctx context.Context) (*response.CustomersResponse, error) {
		customers, err := s.customers(ctx)
		if err != nil {
			return nil, err
		}
		resp := response.CustomersToResponse(customers)
		return &resp, nil
	})
}

func (s *statsService) MostBookedPackage(ctx context.Context) (*response.MostBookedPackageResponse, error) {
	return cached(ctx, s, "most-booked-package", func(ctx context.Context) (*response.MostBookedPackageResponse, error) {
		top, err := s.topPackage(ctx)
		if err != nil {
			return nil, err
		}
		if top == nil {
			return &response.MostBookedPackageResponse{Message: response.NoConfirmedBookingsMessage}, nil
		}
		return response.TopPackageToResponse(top), nil
	})
}

func (s *statsService) RevenueByMonth(ctx context.Context, from, to string) ([]response.MonthRevenueResponse, error) {
	window, err := parseWindow(from, to)
	if err != nil {
		return nil, err
	}

	key := "revenue-by-month:" + windowKey(window)
	return cached(ctx, s, key, func(ctx context.Context) ([]response.MonthRevenueResponse, error) {
		groups, err := s.repo.Stats.GroupConfirmed(ctx, repository.GroupByMonthCurrency, window)
		if err != nil {
			return nil, err
		}
		months := analytics.ProjectMonths(analytics.Run(groups, analytics.MonthlyOrder...))
		return response.MonthsToResponse(months), nil
	})
}

// Overview runs its rollups concurrently; the first failure cancels the
// rest and fails the whole call. Confirmed bookings and customers share one
// GroupAll query.
func (s *statsService) Overview(ctx context.Context) (*response.OverviewResponse, error) {
	return cached(ctx, s, "overview", func(ctx context.Context) (*response.OverviewResponse, error) {
		var (
			packages  int64
			customers analytics.Customers
			rev       analytics.Revenue
			top       *analytics.TopPackage
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			packages, err = s.packageCount(gctx)
			return err
		})
		g.Go(func() (err error) {
			customers, err = s.customers(gctx)
			return err
		})
		g.Go(func() (err error) {
			rev, err = s.revenue(gctx)
			return err
		})
		g.Go(func() (err error) {
			top, err = s.topPackage(gctx)
			return err
		})

		if err := g.Wait(); err != nil {
			return nil, err
		}

		return &response.OverviewResponse{
			Totals: response.OverviewTotals{
				Packages:          packages,
				ConfirmedBookings: customers.Bookings,
				Customers:         customers.TotalTravelers,
			},
			Revenue:           response.RevenueToResponse(rev),
			MostBookedPackage: response.TopPackageToResponse(top),
		}, nil
	})
}

func (s *statsService) packageCount(ctx context.Context) (int64, error) {
	total, err := s.repo.Package.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count packages: %w", err)
	}
	return total, nil
}

func (s *statsService) customers(ctx context.Context) (analytics.Customers, error) {
	groups, err := s.repo.Stats.GroupConfirmed(ctx, repository.GroupAll, repository.TimeWindow{})
	if err != nil {
		return analytics.Customers{}, err
	}
	return analytics.ProjectCustomers(groups), nil
}

func (s *statsService) revenue(ctx context.Context) (analytics.Revenue, error) {
	groups, err := s.repo.Stats.GroupConfirmed(ctx, repository.GroupByCurrency, repository.TimeWindow{})
	if err != nil {
		return analytics.Revenue{}, err
	}
	return analytics.ProjectRevenue(analytics.Run(groups, analytics.RevenueOrder...)), nil
}

func (s *statsService) topPackage(ctx context.Context) (*analytics.TopPackage, error) {
	groups, err := s.repo.Stats.GroupConfirmed(ctx, repository.GroupByPackage, repository.TimeWindow{})
	if err != nil {
		return nil, err
	}
	return analytics.JoinTopPackage(ctx, analytics.Run(groups, analytics.MostBookedOrder...), s.repo.Package.FindByID)
}

// cached serves key from the stats cache, computing and storing it on a
// miss. The result is written back under the generation the miss was seen
// in, so a value computed across an invalidation is never served. Cache
// failures are logged and bypassed.
func cached[T any](ctx context.Context, s *statsService, key string, compute func(context.Context) (T, error)) (T, error) {
	lookup, lookupErr := s.cache.Get(ctx, key)
	switch {
	case lookupErr != nil:
		metrics.StatsCacheLookups.WithLabelValues("error").Inc()
		s.log.Warn("Stats cache read failed", zap.Error(lookupErr), zap.String("key", key))
	case lookup.Hit:
		var hit T
		if err := json.Unmarshal(lookup.Value, &hit); err == nil {
			metrics.StatsCacheLookups.WithLabelValues("hit").Inc()
			return hit, nil
		}
		s.log.Warn("Discarding undecodable stats cache entry", zap.String("key", key))
	default:
		metrics.StatsCacheLookups.WithLabelValues("miss").Inc()
	}

	value, err := compute(ctx)
	if err != nil {
		s.log.Error("Failed to compute stats", zap.Error(err), zap.String("key", key))
		var zero T
		return zero, err
	}

	// Without a generation there is no safe keyspace to write into
	if lookupErr != nil {
		return value, nil
	}

	if raw, err := json.Marshal(value); err == nil {
		if err := s.cache.Set(ctx, lookup.Generation, key, raw); err != nil {
			s.log.Warn("Stats cache write failed", zap.Error(err), zap.String("key", key))
		}
	}

	return value, nil
}

// parseWindow reads optional ISO date bounds into a [from, to) window
func parseWindow(from, to string) (repository.TimeWindow, error) {
	var window repository.TimeWindow

	if from = strings.TrimSpace(from); from != "" {
		t, err := utils.ParseDate(from)
		if err != nil {
			return window, fmt.Errorf("%w: invalid from date %q", ErrInvalidInput, from)
		}
		window.From = &t
	}

	if to = strings.TrimSpace(to); to != "" {
		t, err := utils.ParseDate(to)
		if err != nil {
			return window, fmt.Errorf("%w: invalid to date %q", ErrInvalidInput, to)
		}
		window.To = &t
	}

	return window, nil
}

func windowKey(w repository.TimeWindow) string {
	from, to := "-", "-"
	if w.From != nil {
		from = w.From.UTC().Format("20060102T150405")
	}
	if w.To != nil {
		to = w.To.UTC().Format("20060102T150405")
	}
	return from + ":" + to
}
