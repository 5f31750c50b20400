package repository

//go:generate mockgen -source=gallery_repo.go -destination=mocks/gallery_repo_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// GalleryRepository manages the single gallery row
type GalleryRepository interface {
	Get(ctx context.Context) (*entity.Gallery, error)
	AddImage(ctx context.Context, url string, at time.Time) (*entity.Gallery, error)
	RemoveImage(ctx context.Context, url string, at time.Time) (*entity.Gallery, error)
}

type galleryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGalleryRepository(db database.PgxIface, log *zap.Logger) GalleryRepository {
	return &galleryRepository{
		db:  db,
		log: log.With(zap.String("repository", "gallery")),
	}
}

// Get returns an empty gallery when the row was never created
func (r *galleryRepository) Get(ctx context.Context) (*entity.Gallery, error) {
	var g entity.Gallery
	err := r.db.QueryRow(ctx, `SELECT images, updated_at FROM gallery WHERE singleton = 'gallery'`).
		Scan(&g.Images, &g.UpdatedAt)
	if err == pgx.ErrNoRows {
		return &entity.Gallery{Images: []string{}}, nil
	}
	if err != nil {
		r.log.Error("Failed to load gallery", zap.Error(err))
		return nil, fmt.Errorf("load gallery: %w", err)
	}

	return &g, nil
}

func (r *galleryRepository) AddImage(ctx context.Context, url string, at time.Time) (*entity.Gallery, error) {
	query := `
		INSERT INTO gallery (singleton, images, updated_at)
		VALUES ('gallery', ARRAY[$1::TEXT], $2)
		ON CONFLICT (singleton) DO UPDATE
		SET images = array_append(gallery.images, $1::TEXT), updated_at = $2
		RETURNING images, updated_at
	`

	var g entity.Gallery
	if err := r.db.QueryRow(ctx, query, url, at).Scan(&g.Images, &g.UpdatedAt); err != nil {
		r.log.Error("Failed to add gallery image", zap.Error(err), zap.String("url", url))
		return nil, fmt.Errorf("add gallery image: %w", err)
	}

	return &g, nil
}

func (r *galleryRepository) RemoveImage(ctx context.Context, url string, at time.Time) (*entity.Gallery, error) {
	query := `
		UPDATE gallery
		SET images = array_remove(images, $1::TEXT), updated_at = $2
		WHERE singleton = 'gallery' AND $1::TEXT = ANY(images)
		RETURNING images, updated_at
	`

	var g entity.Gallery
	err := r.db.QueryRow(ctx, query, url, at).Scan(&g.Images, &g.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("gallery image %s: %w", url, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to remove gallery image", zap.Error(err), zap.String("url", url))
		return nil, fmt.Errorf("remove gallery image: %w", err)
	}

	return &g, nil
}
