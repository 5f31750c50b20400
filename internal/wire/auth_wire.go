package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	r.Route("/admin", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Post("/login", authHandler.Login)

		// Open while no admin exists, SUPER_ADMIN only afterwards
		r.With(middleware.OptionalOperator(auth, log)).Post("/register", authHandler.Register)

		// ==================== OPERATOR ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Operator(auth, log))

			r.Get("/me", authHandler.Me)
			r.Post("/logout", authHandler.Logout)
		})
	})
}
