package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	r.Route("/bookings", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// POST /api/bookings - booking request from the website form
		r.Post("/", bookingHandler.CreateBooking)

		// ==================== OPERATOR ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Operator(auth, log))

			r.Get("/", bookingHandler.ListBookings)
			r.Get("/{id}", bookingHandler.GetBooking)
			r.Get("/{id}/receipt", bookingHandler.GetReceipt)
			r.Patch("/{id}", bookingHandler.PatchBooking)

			// Status changes apply from any prior status
			r.Patch("/{id}/confirm", bookingHandler.ConfirmBooking)
			r.Patch("/{id}/reject", bookingHandler.RejectBooking)
			r.Patch("/{id}/cancel", bookingHandler.CancelBooking)
		})
	})
}
