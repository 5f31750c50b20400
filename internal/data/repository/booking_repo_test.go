package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"tour-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

var bookingColumnNames = []string{
	"id", "package_id", "package_title_snapshot", "status",
	"customer_first_name", "customer_last_name", "customer_email", "customer_phone",
	"travel_date", "travelers", "special_requests",
	"currency", "package_price_cents", "sdf_fee_cents", "total_per_person_cents", "total_group_cents",
	"source", "admin_reason", "created_at", "updated_at",
}

// sqlPattern quotes s and lets any run of whitespace match its spaces.
func sqlPattern(s string) string {
	return strings.ReplaceAll(regexp.QuoteMeta(s), " ", `\s+`)
}

func newBookingRepoMock(t *testing.T) (pgxmock.PgxPoolIface, BookingRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock, NewBookingRepository(mock, zap.NewNop())
}

func sampleBooking(status entity.BookingStatus, reason *string) *entity.Booking {
	at := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	return &entity.Booking{
		Base:                 entity.Base{ID: uuid.New(), CreatedAt: at, UpdatedAt: at},
		PackageID:            uuid.New(),
		PackageTitleSnapshot: "Paro Valley",
		Status:               status,
		Customer:             entity.Customer{FirstName: "Pema", LastName: "Dorji", Email: "pema@example.com", Phone: "+97517000000"},
		Trip:                 entity.Trip{TravelDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Travelers: 2},
		Pricing: entity.Pricing{
			Currency:            "USD",
			PackagePriceCents:   120000,
			SDFFeeCents:         10000,
			TotalPerPersonCents: 130000,
			TotalGroupCents:     260000,
		},
		Source:      entity.BookingSourceWebForm,
		AdminReason: reason,
	}
}

func bookingRows(mock pgxmock.PgxPoolIface, b *entity.Booking) *pgxmock.Rows {
	return mock.NewRows(bookingColumnNames).AddRow(
		b.ID, b.PackageID, b.PackageTitleSnapshot, b.Status,
		b.Customer.FirstName, b.Customer.LastName, b.Customer.Email, b.Customer.Phone,
		b.Trip.TravelDate, b.Trip.Travelers, b.Trip.SpecialRequests,
		b.Pricing.Currency, b.Pricing.PackagePriceCents, b.Pricing.SDFFeeCents,
		b.Pricing.TotalPerPersonCents, b.Pricing.TotalGroupCents,
		b.Source, b.AdminReason, b.CreatedAt, b.UpdatedAt,
	)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	statusQuery := sqlPattern("UPDATE bookings SET status = $2, admin_reason = COALESCE($3, admin_reason), updated_at = $4 WHERE id = $1 RETURNING")
	at := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)

	t.Run("absent reason binds a NULL so the stored one survives", func(t *testing.T) {
		mock, repo := newBookingRepoMock(t)
		stored := "paid by bank transfer"
		want := sampleBooking(entity.BookingStatusConfirmed, &stored)
		change := entity.NewStatusChange(entity.BookingStatusConfirmed, "  ", at)

		mock.ExpectQuery(statusQuery).
			WithArgs(want.ID, entity.BookingStatusConfirmed, (*string)(nil), at).
			WillReturnRows(bookingRows(mock, want))

		got, err := repo.UpdateStatus(context.Background(), want.ID, change)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || got.Status != entity.BookingStatusConfirmed {
			t.Fatalf("expected confirmed booking, got %+v", got)
		}
		if got.AdminReason == nil || *got.AdminReason != stored {
			t.Fatalf("expected stored reason %q, got %v", stored, got.AdminReason)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("present reason is bound as the new value", func(t *testing.T) {
		mock, repo := newBookingRepoMock(t)
		reason := "dates unavailable"
		want := sampleBooking(entity.BookingStatusRejected, &reason)
		change := entity.NewStatusChange(entity.BookingStatusRejected, reason, at)

		mock.ExpectQuery(statusQuery).
			WithArgs(want.ID, entity.BookingStatusRejected, &reason, at).
			WillReturnRows(bookingRows(mock, want))

		got, err := repo.UpdateStatus(context.Background(), want.ID, change)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.AdminReason == nil || *got.AdminReason != reason {
			t.Fatalf("expected reason %q, got %v", reason, got.AdminReason)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("missing booking is nil without error", func(t *testing.T) {
		mock, repo := newBookingRepoMock(t)
		id := uuid.New()

		mock.ExpectQuery(statusQuery).
			WithArgs(id, entity.BookingStatusCancelled, (*string)(nil), at).
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.UpdateStatus(context.Background(), id, entity.NewStatusChange(entity.BookingStatusCancelled, "", at))
		if err != nil || got != nil {
			t.Fatalf("expected (nil, nil), got (%v, %v)", got, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("database failure is wrapped", func(t *testing.T) {
		mock, repo := newBookingRepoMock(t)
		id := uuid.New()
		boom := errors.New("connection reset")

		mock.ExpectQuery(statusQuery).
			WithArgs(id, entity.BookingStatusPending, (*string)(nil), at).
			WillReturnError(boom)

		_, err := repo.UpdateStatus(context.Background(), id, entity.NewStatusChange(entity.BookingStatusPending, "", at))
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped %v, got %v", boom, err)
		}
	})
}

func TestBookingRepository_Patch(t *testing.T) {
	patchQuery := "^" + sqlPattern(
		"UPDATE bookings SET customer_first_name = COALESCE($2, customer_first_name), "+
			"customer_last_name = COALESCE($3, customer_last_name), "+
			"customer_email = COALESCE($4, customer_email), "+
			"customer_phone = COALESCE($5, customer_phone), "+
			"travel_date = COALESCE($6, travel_date), "+
			"special_requests = COALESCE($7, special_requests), "+
			"admin_reason = COALESCE($8, admin_reason), "+
			"updated_at = NOW() WHERE id = $1 RETURNING")

	t.Run("only whitelisted columns are written", func(t *testing.T) {
		mock, repo := newBookingRepoMock(t)
		want := sampleBooking(entity.BookingStatusPending, nil)
		first := "Karma"
		date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
		want.Customer.FirstName = first
		want.Trip.TravelDate = date

		mock.ExpectQuery(patchQuery).
			WithArgs(want.ID, &first, (*string)(nil), (*string)(nil), (*string)(nil), &date, (*string)(nil), (*string)(nil)).
			WillReturnRows(bookingRows(mock, want))

		got, err := repo.Patch(context.Background(), want.ID, entity.BookingPatch{FirstName: &first, TravelDate: &date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Customer.FirstName != first || !got.Trip.TravelDate.Equal(date) {
			t.Fatalf("patched fields not returned: %+v", got)
		}
		if got.Status != entity.BookingStatusPending || got.Pricing.TotalGroupCents != want.Pricing.TotalGroupCents {
			t.Fatalf("status or pricing changed: %+v", got)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("missing booking is nil without error", func(t *testing.T) {
		mock, repo := newBookingRepoMock(t)
		id := uuid.New()
		email := "new@example.com"

		mock.ExpectQuery(patchQuery).
			WithArgs(id, (*string)(nil), (*string)(nil), &email, (*string)(nil), (*time.Time)(nil), (*string)(nil), (*string)(nil)).
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.Patch(context.Background(), id, entity.BookingPatch{Email: &email})
		if err != nil || got != nil {
			t.Fatalf("expected (nil, nil), got (%v, %v)", got, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})
}
