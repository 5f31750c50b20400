package repository

//go:generate mockgen -source=stats_repo.go -destination=mocks/stats_repo_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"go.uber.org/zap"
)

// GroupDimension selects the grouping key of a confirmed-booking rollup
type GroupDimension int

const (
	GroupAll GroupDimension = iota
	GroupByCurrency
	GroupByPackage
	GroupByMonthCurrency
)

func (d GroupDimension) String() string {
	switch d {
	case GroupAll:
		return "all"
	case GroupByCurrency:
		return "currency"
	case GroupByPackage:
		return "package"
	case GroupByMonthCurrency:
		return "month_currency"
	}
	return "unknown"
}

// TimeWindow bounds updated_at as [From, To). Nil bounds are open.
type TimeWindow struct {
	From *time.Time
	To   *time.Time
}

type StatsRepository interface {
	// GroupConfirmed sums total_group_cents and travelers and counts rows
	// over CONFIRMED bookings, grouped by dim. Rows come back unordered.
	GroupConfirmed(ctx context.Context, dim GroupDimension, window TimeWindow) ([]entity.BookingGroup, error)
}

const (
	currencyKey = `COALESCE(NULLIF(currency, ''), 'UNKNOWN')`
	monthKey    = `to_char(updated_at AT TIME ZONE 'UTC', 'YYYY-MM')`
)

type statsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStatsRepository(db database.PgxIface, log *zap.Logger) StatsRepository {
	return &statsRepository{
		db:  db,
		log: log.With(zap.String("repository", "stats")),
	}
}

func groupKeys(dim GroupDimension) ([]string, error) {
	switch dim {
	case GroupAll:
		return nil, nil
	case GroupByCurrency:
		return []string{currencyKey}, nil
	case GroupByPackage:
		return []string{"package_id"}, nil
	case GroupByMonthCurrency:
		return []string{monthKey, currencyKey}, nil
	}
	return nil, fmt.Errorf("unsupported group dimension %d", dim)
}

func buildGroupQuery(dim GroupDimension, window TimeWindow) (string, []any, error) {
	keys, err := groupKeys(dim)
	if err != nil {
		return "", nil, err
	}

	selectList := append([]string{}, keys...)
	selectList = append(selectList,
		"COALESCE(SUM(total_group_cents), 0)::BIGINT",
		"COUNT(*)",
		"COALESCE(SUM(travelers), 0)::BIGINT",
	)

	conditions := []string{"status = 'CONFIRMED'"}
	args := []any{}
	if window.From != nil {
		args = append(args, *window.From)
		conditions = append(conditions, fmt.Sprintf("updated_at >= $%d", len(args)))
	}
	if window.To != nil {
		args = append(args, *window.To)
		conditions = append(conditions, fmt.Sprintf("updated_at < $%d", len(args)))
	}

	query := "SELECT " + strings.Join(selectList, ", ") +
		" FROM bookings WHERE " + strings.Join(conditions, " AND ")
	if len(keys) > 0 {
		positions := make([]string, len(keys))
		for i := range keys {
			positions[i] = fmt.Sprintf("%d", i+1)
		}
		query += " GROUP BY " + strings.Join(positions, ", ")
	}

	return query, args, nil
}

func (r *statsRepository) GroupConfirmed(ctx context.Context, dim GroupDimension, window TimeWindow) ([]entity.BookingGroup, error) {
	query, args, err := buildGroupQuery(dim, window)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to group confirmed bookings",
			zap.Error(err),
			zap.Stringer("dimension", dim),
		)
		return nil, fmt.Errorf("group confirmed bookings by %s: %w", dim, err)
	}
	defer rows.Close()

	groups := []entity.BookingGroup{}
	for rows.Next() {
		var g entity.BookingGroup
		var dest []any
		switch dim {
		case GroupByCurrency:
			dest = append(dest, &g.Currency)
		case GroupByPackage:
			dest = append(dest, &g.PackageID)
		case GroupByMonthCurrency:
			dest = append(dest, &g.Month, &g.Currency)
		}
		dest = append(dest, &g.TotalCents, &g.Bookings, &g.Travelers)

		if err := rows.Scan(dest...); err != nil {
			r.log.Error("Failed to scan booking group", zap.Error(err), zap.Stringer("dimension", dim))
			return nil, fmt.Errorf("scan booking group: %w", err)
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking groups: %w", err)
	}

	return groups, nil
}
