package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStats(
	r chi.Router,
	statsHandler *adaptor.StatsHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== OPERATOR ROUTES ====================
	r.Route("/stats", func(r chi.Router) {
		r.Use(middleware.Operator(auth, log))

		r.Get("/total-packages", statsHandler.TotalPackages)
		r.Get("/confirmed-bookings", statsHandler.ConfirmedBookings)
		r.Get("/total-revenue", statsHandler.TotalRevenue)
		r.Get("/total-customers", statsHandler.TotalCustomers)
		r.Get("/most-booked-package", statsHandler.MostBookedPackage)
		r.Get("/revenue-by-month", statsHandler.RevenueByMonth)
		r.Get("/overview", statsHandler.Overview)
	})
}
