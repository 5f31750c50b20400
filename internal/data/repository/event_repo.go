package repository

//go:generate mockgen -source=event_repo.go -destination=mocks/event_repo_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindAll(ctx context.Context) ([]*entity.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, title, description, event_date, location, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Date,
		event.Location,
		event.Image,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create event", zap.Error(err), zap.String("title", event.Title))
		return fmt.Errorf("create event %s: %w", event.Title, err)
	}

	return nil
}

// FindAll lists events by date, soonest first
func (r *eventRepository) FindAll(ctx context.Context) ([]*entity.Event, error) {
	query := `
		SELECT id, title, description, event_date, location, image, created_at, updated_at
		FROM events
		ORDER BY event_date ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list events", zap.Error(err))
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := []*entity.Event{}
	for rows.Next() {
		var e entity.Event
		if err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.Description,
			&e.Date,
			&e.Location,
			&e.Image,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event rows: %w", err)
	}

	return events, nil
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete event", zap.Error(err), zap.String("event_id", id.String()))
		return fmt.Errorf("delete event %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
