package wire

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/cache"
	"tour-booking/pkg/metrics"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// App holds the wired router and the services background jobs need
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router
func Wiring(repo *repository.Repository, statsCache cache.StatsCache, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, statsCache, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, service.Auth, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	auth usecase.AuthService,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.App.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())

	r.Route("/api", func(r chi.Router) {
		wireAuth(r, handler.Auth, auth, logger)
		wireBooking(r, handler.Booking, auth, logger)
		wireStats(r, handler.Stats, auth, logger)
		wirePackage(r, handler.Package, auth, logger)
		wireContent(r, handler.Content, auth, logger)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	})
	r.Handle("/metrics", metrics.Handler())

	return r
}
