package repository

//go:generate mockgen -source=faq_repo.go -destination=mocks/faq_repo_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FAQRepository interface {
	Create(ctx context.Context, faq *entity.FAQ) error
	FindAll(ctx context.Context) ([]*entity.FAQ, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type faqRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFAQRepository(db database.PgxIface, log *zap.Logger) FAQRepository {
	return &faqRepository{
		db:  db,
		log: log.With(zap.String("repository", "faq")),
	}
}

func (r *faqRepository) Create(ctx context.Context, faq *entity.FAQ) error {
	query := `
		INSERT INTO faqs (id, question, answer, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := r.db.Exec(ctx, query, faq.ID, faq.Question, faq.Answer, faq.CreatedAt, faq.UpdatedAt); err != nil {
		r.log.Error("Failed to create faq", zap.Error(err))
		return fmt.Errorf("create faq: %w", err)
	}

	return nil
}

func (r *faqRepository) FindAll(ctx context.Context) ([]*entity.FAQ, error) {
	query := `
		SELECT id, question, answer, created_at, updated_at
		FROM faqs
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list faqs", zap.Error(err))
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()

	faqs := []*entity.FAQ{}
	for rows.Next() {
		var f entity.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan faq row: %w", err)
		}
		faqs = append(faqs, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate faq rows: %w", err)
	}

	return faqs, nil
}

func (r *faqRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete faq", zap.Error(err), zap.String("faq_id", id.String()))
		return fmt.Errorf("delete faq %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("faq %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
