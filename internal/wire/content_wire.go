package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/entity"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContent(
	r chi.Router,
	contentHandler *adaptor.ContentHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/events", contentHandler.ListEvents)
	r.Get("/faqs", contentHandler.ListFAQs)
	r.Get("/gallery", contentHandler.GetGallery)
	r.Get("/testimonials", contentHandler.ListTestimonials)

	// ==================== EDITOR ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Operator(auth, log))
		r.Use(middleware.RequireRole(log, entity.RoleSuperAdmin, entity.RoleAdmin))

		r.Post("/events", contentHandler.CreateEvent)
		r.Delete("/events/{id}", contentHandler.DeleteEvent)

		r.Post("/faqs", contentHandler.CreateFAQ)
		r.Delete("/faqs/{id}", contentHandler.DeleteFAQ)

		r.Post("/gallery/images", contentHandler.AddGalleryImage)
		r.Delete("/gallery/images", contentHandler.RemoveGalleryImage)

		r.Post("/testimonials", contentHandler.CreateTestimonial)
		r.Delete("/testimonials/{id}", contentHandler.DeleteTestimonial)
	})
}
