package repository

//go:generate mockgen -source=package_repo.go -destination=mocks/package_repo_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Package, error)
	FindAll(ctx context.Context) ([]*entity.Package, error)
	Update(ctx context.Context, pkg *entity.Package) error
	DeleteBySlug(ctx context.Context, slug string) (*entity.Package, error)
	Count(ctx context.Context) (int64, error)
}

const packageColumns = `
	id, slug, title, description, currency, price_cents, price_major,
	duration_days, duration_text, location, type, travelers, image,
	includes, rating, price_details, created_at, updated_at`

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

func scanPackage(row pgx.Row) (*entity.Package, error) {
	var p entity.Package
	err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Title,
		&p.Description,
		&p.Currency,
		&p.PriceCents,
		&p.PriceMajor,
		&p.DurationDays,
		&p.DurationText,
		&p.Location,
		&p.Type,
		&p.Travelers,
		&p.Image,
		&p.Includes,
		&p.Rating,
		&p.PriceDetails,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	query := `INSERT INTO packages (` + packageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Slug,
		pkg.Title,
		pkg.Description,
		pkg.Currency,
		pkg.PriceCents,
		pkg.PriceMajor,
		pkg.DurationDays,
		pkg.DurationText,
		pkg.Location,
		pkg.Type,
		pkg.Travelers,
		pkg.Image,
		nonNilStrings(pkg.Includes),
		pkg.Rating,
		nonNilPriceDetails(pkg.PriceDetails),
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("package slug %s: %w", pkg.Slug, ErrDuplicate)
		}
		r.log.Error("Failed to create package",
			zap.Error(err),
			zap.String("slug", pkg.Slug),
		)
		return fmt.Errorf("create package %s: %w", pkg.Slug, err)
	}

	return nil
}

func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`

	pkg, err := scanPackage(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return nil, fmt.Errorf("find package by ID %s: %w", id.String(), err)
	}

	return pkg, nil
}

func (r *packageRepository) FindBySlug(ctx context.Context, slug string) (*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE slug = $1`

	pkg, err := scanPackage(r.db.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find package by slug %s: %w", slug, err)
	}

	return pkg, nil
}

// FindAll lists packages newest first
func (r *packageRepository) FindAll(ctx context.Context) ([]*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list packages", zap.Error(err))
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	packages := []*entity.Package{}
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate package rows: %w", err)
	}

	return packages, nil
}

func (r *packageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	query := `
		UPDATE packages
		SET title = $2, description = $3, currency = $4, price_cents = $5, price_major = $6,
		    duration_days = $7, duration_text = $8, location = $9, type = $10, travelers = $11,
		    image = $12, includes = $13, rating = $14, price_details = $15, updated_at = $16
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Title,
		pkg.Description,
		pkg.Currency,
		pkg.PriceCents,
		pkg.PriceMajor,
		pkg.DurationDays,
		pkg.DurationText,
		pkg.Location,
		pkg.Type,
		pkg.Travelers,
		pkg.Image,
		nonNilStrings(pkg.Includes),
		pkg.Rating,
		nonNilPriceDetails(pkg.PriceDetails),
		pkg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update package",
			zap.Error(err),
			zap.String("slug", pkg.Slug),
		)
		return fmt.Errorf("update package %s: %w", pkg.Slug, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package %s: %w", pkg.Slug, ErrNotFound)
	}

	return nil
}

// DeleteBySlug removes the package and returns it, or (nil, nil) when absent.
// Bookings referencing the package are left as they are.
func (r *packageRepository) DeleteBySlug(ctx context.Context, slug string) (*entity.Package, error) {
	query := `DELETE FROM packages WHERE slug = $1 RETURNING ` + packageColumns

	pkg, err := scanPackage(r.db.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete package",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("delete package %s: %w", slug, err)
	}

	r.log.Info("Package deleted", zap.String("slug", slug), zap.String("package_id", pkg.ID.String()))
	return pkg, nil
}

func (r *packageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM packages`).Scan(&count); err != nil {
		r.log.Error("Failed to count packages", zap.Error(err))
		return 0, fmt.Errorf("count packages: %w", err)
	}

	return count, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilPriceDetails(d []entity.PriceDetail) []entity.PriceDetail {
	if d == nil {
		return []entity.PriceDetail{}
	}
	return d
}
