package adaptor

import (
	"net/http"

	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type StatsHandler struct {
	service usecase.StatsService
	log     *zap.Logger
}

func NewStatsHandler(service usecase.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log.With(zap.String("handler", "stats")),
	}
}

// TotalPackages handles GET /api/stats/total-packages
func (h *StatsHandler) TotalPackages(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.TotalPackages(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "count packages")
		return
	}

	utils.ResponseSuccess(w, "success", total)
}

// ConfirmedBookings handles GET /api/stats/confirmed-bookings
func (h *StatsHandler) ConfirmedBookings(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.ConfirmedBookings(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "count confirmed bookings")
		return
	}

	utils.ResponseSuccess(w, "success", total)
}

// TotalRevenue handles GET /api/stats/total-revenue
func (h *StatsHandler) TotalRevenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.service.TotalRevenue(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "sum revenue")
		return
	}

	utils.ResponseSuccess(w, "success", revenue)
}

// TotalCustomers handles GET /api/stats/total-customers
func (h *StatsHandler) TotalCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.TotalCustomers(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "count customers")
		return
	}

	utils.ResponseSuccess(w, "success", customers)
}

// MostBookedPackage handles GET /api/stats/most-booked-package
func (h *StatsHandler) MostBookedPackage(w http.ResponseWriter, r *http.Request) {
	top, err := h.service.MostBookedPackage(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "find most booked package")
		return
	}

	utils.ResponseSuccess(w, "success", top)
}

// RevenueByMonth handles GET /api/stats/revenue-by-month?from=&to=
func (h *StatsHandler) RevenueByMonth(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	months, err := h.service.RevenueByMonth(r.Context(), query.Get("from"), query.Get("to"))
	if err != nil {
		writeServiceError(w, h.log, err, "sum revenue by month")
		return
	}

	utils.ResponseSuccess(w, "success", months)
}

// Overview handles GET /api/stats/overview
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "build overview")
		return
	}

	utils.ResponseSuccess(w, "success", overview)
}
