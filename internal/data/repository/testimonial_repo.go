package repository

//go:generate mockgen -source=testimonial_repo.go -destination=mocks/testimonial_repo_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *entity.Testimonial) error
	FindAll(ctx context.Context) ([]*entity.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonialRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTestimonialRepository(db database.PgxIface, log *zap.Logger) TestimonialRepository {
	return &testimonialRepository{
		db:  db,
		log: log.With(zap.String("repository", "testimonial")),
	}
}

func (r *testimonialRepository) Create(ctx context.Context, t *entity.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, name, location, package, rating, text, avatar, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		t.ID,
		t.Name,
		t.Location,
		t.Package,
		t.Rating,
		t.Text,
		t.Avatar,
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create testimonial", zap.Error(err), zap.String("name", t.Name))
		return fmt.Errorf("create testimonial: %w", err)
	}

	return nil
}

// FindAll lists testimonials newest first
func (r *testimonialRepository) FindAll(ctx context.Context) ([]*entity.Testimonial, error) {
	query := `
		SELECT id, name, location, package, rating, text, avatar, created_at, updated_at
		FROM testimonials
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list testimonials", zap.Error(err))
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := []*entity.Testimonial{}
	for rows.Next() {
		var t entity.Testimonial
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Location,
			&t.Package,
			&t.Rating,
			&t.Text,
			&t.Avatar,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan testimonial row: %w", err)
		}
		testimonials = append(testimonials, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate testimonial rows: %w", err)
	}

	return testimonials, nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete testimonial", zap.Error(err), zap.String("testimonial_id", id.String()))
		return fmt.Errorf("delete testimonial %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("testimonial %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
