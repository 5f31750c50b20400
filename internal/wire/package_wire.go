package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/entity"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePackage(
	r chi.Router,
	packageHandler *adaptor.PackageHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	r.Route("/packages", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", packageHandler.ListPackages)
		r.Get("/{slug}", packageHandler.GetPackage)

		// ==================== EDITOR ROUTES ====================
		// STAFF can read bookings and stats but not edit the catalogue
		r.Group(func(r chi.Router) {
			r.Use(middleware.Operator(auth, log))
			r.Use(middleware.RequireRole(log, entity.RoleSuperAdmin, entity.RoleAdmin))

			r.Post("/", packageHandler.CreatePackage)
			r.Patch("/{slug}", packageHandler.UpdatePackage)
			r.Delete("/{slug}", packageHandler.DeletePackage)
		})
	})
}
