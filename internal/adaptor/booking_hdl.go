package adaptor

import (
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (public)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := decodeBody(r, &req, false); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking received", booking)
}

// ListBookings handles GET /api/bookings?email= (operator)
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBooking handles GET /api/bookings/{id} (operator)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ConfirmBooking handles PATCH /api/bookings/{id}/confirm (operator)
func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	var req request.StatusReasonRequest
	if err := decodeBody(r, &req, true); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.ConfirmBooking(r.Context(), chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		writeServiceError(w, h.log, err, "confirm booking")
		return
	}

	utils.ResponseSuccess(w, "Booking confirmed", response.BookingActionResponse{OK: true, Booking: booking})
}

// RejectBooking handles PATCH /api/bookings/{id}/reject (operator)
func (h *BookingHandler) RejectBooking(w http.ResponseWriter, r *http.Request) {
	var req request.StatusReasonRequest
	if err := decodeBody(r, &req, true); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.RejectBooking(r.Context(), chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		writeServiceError(w, h.log, err, "reject booking")
		return
	}

	utils.ResponseSuccess(w, "Booking rejected", response.BookingActionResponse{OK: true, Booking: booking})
}

// CancelBooking handles PATCH /api/bookings/{id}/cancel (operator)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.CancelBooking(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", response.BookingActionResponse{OK: true})
}

// PatchBooking handles PATCH /api/bookings/{id} (operator)
func (h *BookingHandler) PatchBooking(w http.ResponseWriter, r *http.Request) {
	var req request.PatchBookingRequest
	if err := decodeBody(r, &req, false); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.PatchBooking(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "patch booking")
		return
	}

	utils.ResponseSuccess(w, "Booking updated", booking)
}

// GetReceipt handles GET /api/bookings/{id}/receipt (operator)
func (h *BookingHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.service.GetReceipt(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "get receipt")
		return
	}

	utils.ResponseFile(w, "application/pdf", receipt.Filename, receipt.Body)
}
