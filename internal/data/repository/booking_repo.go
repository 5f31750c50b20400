package repository

//go:generate mockgen -source=booking_repo.go -destination=mocks/booking_repo_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, email string) ([]*entity.Booking, error)

	// Operator mutations, each a single atomic UPDATE ... RETURNING.
	// A missing booking yields (nil, nil).
	UpdateStatus(ctx context.Context, id uuid.UUID, change entity.StatusChange) (*entity.Booking, error)
	Patch(ctx context.Context, id uuid.UUID, patch entity.BookingPatch) (*entity.Booking, error)
}

const bookingColumns = `
	id, package_id, package_title_snapshot, status,
	customer_first_name, customer_last_name, customer_email, customer_phone,
	travel_date, travelers, special_requests,
	currency, package_price_cents, sdf_fee_cents, total_per_person_cents, total_group_cents,
	source, admin_reason, created_at, updated_at`

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.PackageID,
		&b.PackageTitleSnapshot,
		&b.Status,
		&b.Customer.FirstName,
		&b.Customer.LastName,
		&b.Customer.Email,
		&b.Customer.Phone,
		&b.Trip.TravelDate,
		&b.Trip.Travelers,
		&b.Trip.SpecialRequests,
		&b.Pricing.Currency,
		&b.Pricing.PackagePriceCents,
		&b.Pricing.SDFFeeCents,
		&b.Pricing.TotalPerPersonCents,
		&b.Pricing.TotalGroupCents,
		&b.Source,
		&b.AdminReason,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.PackageID,
		booking.PackageTitleSnapshot,
		booking.Status,
		booking.Customer.FirstName,
		booking.Customer.LastName,
		booking.Customer.Email,
		booking.Customer.Phone,
		booking.Trip.TravelDate,
		booking.Trip.Travelers,
		booking.Trip.SpecialRequests,
		booking.Pricing.Currency,
		booking.Pricing.PackagePriceCents,
		booking.Pricing.SDFFeeCents,
		booking.Pricing.TotalPerPersonCents,
		booking.Pricing.TotalGroupCents,
		booking.Source,
		booking.AdminReason,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("package_id", booking.PackageID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

// FindAll lists bookings newest first, optionally filtered by customer email
func (r *bookingRepository) FindAll(ctx context.Context, email string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	args := []any{}

	if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
		query += ` WHERE customer_email = $1`
		args = append(args, email)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []*entity.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, change entity.StatusChange) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2, admin_reason = COALESCE($3, admin_reason), updated_at = $4
		WHERE id = $1
		RETURNING ` + bookingColumns

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id, change.Status, change.Reason, change.At))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(change.Status)),
		)
		return nil, fmt.Errorf("update booking %s status to %s: %w", id.String(), string(change.Status), err)
	}

	return booking, nil
}

func (r *bookingRepository) Patch(ctx context.Context, id uuid.UUID, patch entity.BookingPatch) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET customer_first_name = COALESCE($2, customer_first_name),
		    customer_last_name  = COALESCE($3, customer_last_name),
		    customer_email      = COALESCE($4, customer_email),
		    customer_phone      = COALESCE($5, customer_phone),
		    travel_date         = COALESCE($6, travel_date),
		    special_requests    = COALESCE($7, special_requests),
		    admin_reason        = COALESCE($8, admin_reason),
		    updated_at          = NOW()
		WHERE id = $1
		RETURNING ` + bookingColumns

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id,
		patch.FirstName,
		patch.LastName,
		patch.Email,
		patch.Phone,
		patch.TravelDate,
		patch.SpecialRequests,
		patch.AdminReason,
	))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to patch booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("patch booking %s: %w", id.String(), err)
	}

	return booking, nil
}
