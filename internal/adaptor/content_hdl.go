package adaptor

import (
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ContentHandler serves events, FAQs, the gallery and testimonials
type ContentHandler struct {
	service usecase.ContentService
	log     *zap.Logger
}

func NewContentHandler(service usecase.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		log:     log.With(zap.String("handler", "content")),
	}
}

// ==================== EVENTS ====================

func (h *ContentHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListEvents(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list events")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

func (h *ContentHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEventRequest
	if err := decodeBody(r, &req, false); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	event, err := h.service.CreateEvent(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create event")
		return
	}

	utils.ResponseCreated(w, "Event created", event)
}

func (h *ContentHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.log, err, "delete event")
		return
	}

	utils.ResponseSuccess(w, "Event deleted", nil)
}

// ==================== FAQS ====================

func (h *ContentHandler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.service.ListFAQs(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list faqs")
		return
	}

	utils.ResponseSuccess(w, "success", faqs)
}

func (h *ContentHandler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFAQRequest
	if err := decodeBody(r, &req, false); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	faq, err := h.service.CreateFAQ(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create faq")
		return
	}

	utils.ResponseCreated(w, "FAQ created", faq)
}

func (h *ContentHandler) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteFAQ(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.log, err, "delete faq")
		return
	}

	utils.ResponseSuccess(w, "FAQ deleted", nil)
}

// ==================== GALLERY ====================

func (h *ContentHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	gallery, err := h.service.GetGallery(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "get gallery")
		return
	}

	utils.ResponseSuccess(w, "success", gallery)
}

func (h *ContentHandler) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	var req request.GalleryImageRequest
	if err := decodeBody(r, &req, false); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	gallery, err := h.service.AddGalleryImage(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "add gallery image")
		return
	}

	utils.ResponseSuccess(w, "Image added", gallery)
}

func (h *ContentHandler) RemoveGalleryImage(w http.ResponseWriter, r *http.Request) {
	var req request.GalleryImageRequest
	if err := decodeBody(r, &req, false); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	gallery, err := h.service.RemoveGalleryImage(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "remove gallery image")
		return
	}

	utils.ResponseSuccess(w, "Image removed", gallery)
}

// ==================== TESTIMONIALS ====================

func (h *ContentHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.service.ListTestimonials(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list testimonials")
		return
	}

	utils.ResponseSuccess(w, "success", testimonials)
}

func (h *ContentHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTestimonialRequest
	if err := decodeBody(r, &req, false); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	testimonial, err := h.service.CreateTestimonial(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create testimonial")
		return
	}

	utils.ResponseCreated(w, "Testimonial created", testimonial)
}

func (h *ContentHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTestimonial(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.log, err, "delete testimonial")
		return
	}

	utils.ResponseSuccess(w, "Testimonial deleted", nil)
}
