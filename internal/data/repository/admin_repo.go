package repository

//go:generate mockgen -source=admin_repo.go -destination=mocks/admin_repo_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
	Count(ctx context.Context) (int64, error)
	// UpdateLoginState persists the lockout counters and last login time
	UpdateLoginState(ctx context.Context, admin *entity.Admin) error
}

const adminColumns = `
	id, first_name, last_name, email, password_hash, role, permissions,
	is_active, last_login_at, login_attempts, lock_until, avatar_url,
	created_at, updated_at`

type adminRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminRepository(db database.PgxIface, log *zap.Logger) AdminRepository {
	return &adminRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin")),
	}
}

func scanAdmin(row pgx.Row) (*entity.Admin, error) {
	var a entity.Admin
	err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.Permissions,
		&a.IsActive,
		&a.LastLoginAt,
		&a.LoginAttempts,
		&a.LockUntil,
		&a.AvatarURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	query := `INSERT INTO admins (` + adminColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, query,
		admin.ID,
		admin.FirstName,
		admin.LastName,
		admin.Email,
		admin.PasswordHash,
		admin.Role,
		nonNilStrings(admin.Permissions),
		admin.IsActive,
		admin.LastLoginAt,
		admin.LoginAttempts,
		admin.LockUntil,
		admin.AvatarURL,
		admin.CreatedAt,
		admin.UpdatedAt,
	)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("admin %s: %w", admin.Email, ErrDuplicate)
		}
		r.log.Error("Failed to create admin",
			zap.Error(err),
			zap.String("email", admin.Email),
		)
		return fmt.Errorf("create admin %s: %w", admin.Email, err)
	}

	return nil
}

func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`

	admin, err := scanAdmin(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin by ID",
			zap.Error(err),
			zap.String("admin_id", id.String()),
		)
		return nil, fmt.Errorf("find admin by ID %s: %w", id.String(), err)
	}

	return admin, nil
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1`

	admin, err := scanAdmin(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find admin by email %s: %w", email, err)
	}

	return admin, nil
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		r.log.Error("Failed to count admins", zap.Error(err))
		return 0, fmt.Errorf("count admins: %w", err)
	}

	return count, nil
}

func (r *adminRepository) UpdateLoginState(ctx context.Context, admin *entity.Admin) error {
	query := `
		UPDATE admins
		SET login_attempts = $2, lock_until = $3, last_login_at = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		admin.ID,
		admin.LoginAttempts,
		admin.LockUntil,
		admin.LastLoginAt,
		admin.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update admin login state",
			zap.Error(err),
			zap.String("admin_id", admin.ID.String()),
		)
		return fmt.Errorf("update login state of admin %s: %w", admin.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("admin %s: %w", admin.ID.String(), ErrNotFound)
	}

	return nil
}
