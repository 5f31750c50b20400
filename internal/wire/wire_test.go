package wire

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/entity"
	"tour-booking/internal/dto/response"
	"tour-booking/internal/usecase"
	"tour-booking/internal/usecase/mocks"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type routerFixture struct {
	router   http.Handler
	auth     *mocks.MockAuthService
	packages *mocks.MockPackageService
	stats    *mocks.MockStatsService
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	service := &usecase.Service{
		Auth:    mocks.NewMockAuthService(ctrl),
		Booking: mocks.NewMockBookingService(ctrl),
		Stats:   mocks.NewMockStatsService(ctrl),
		Package: mocks.NewMockPackageService(ctrl),
		Content: mocks.NewMockContentService(ctrl),
	}
	config := &utils.Config{App: utils.AppConfig{CORSOrigins: []string{"*"}}}
	logger := zap.NewNop()

	return routerFixture{
		router:   setupRouter(adaptor.NewHandler(service, logger), service.Auth, config, logger),
		auth:     service.Auth.(*mocks.MockAuthService),
		packages: service.Package.(*mocks.MockPackageService),
		stats:    service.Stats.(*mocks.MockStatsService),
	}
}

func (f routerFixture) serve(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter(t *testing.T) {
	t.Run("health is a plain body", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.serve(http.MethodGet, "/health", "")
		if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != `{"ok":true}` {
			t.Fatalf("unexpected health response %d %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("catalogue reads are public", func(t *testing.T) {
		f := newRouterFixture(t)
		f.packages.EXPECT().ListPackages(gomock.Any()).Return([]response.PackageResponse{}, nil)

		if rec := f.serve(http.MethodGet, "/api/packages", ""); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("stats need an operator", func(t *testing.T) {
		f := newRouterFixture(t)

		if rec := f.serve(http.MethodGet, "/api/stats/overview", ""); rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("staff reads stats", func(t *testing.T) {
		f := newRouterFixture(t)
		f.auth.EXPECT().Authenticate(gomock.Any(), "staff").
			Return(&usecase.Operator{ID: uuid.New(), Role: entity.RoleStaff, Session: uuid.New()}, nil)
		f.stats.EXPECT().TotalPackages(gomock.Any()).Return(&response.TotalResponse{Total: 4}, nil)

		if rec := f.serve(http.MethodGet, "/api/stats/total-packages", "staff"); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("staff cannot edit the catalogue", func(t *testing.T) {
		f := newRouterFixture(t)
		f.auth.EXPECT().Authenticate(gomock.Any(), "staff").
			Return(&usecase.Operator{ID: uuid.New(), Role: entity.RoleStaff, Session: uuid.New()}, nil)

		if rec := f.serve(http.MethodDelete, "/api/packages/paro-valley", "staff"); rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("admin deletes a package", func(t *testing.T) {
		f := newRouterFixture(t)
		f.auth.EXPECT().Authenticate(gomock.Any(), "admin").
			Return(&usecase.Operator{ID: uuid.New(), Role: entity.RoleAdmin, Session: uuid.New()}, nil)
		f.packages.EXPECT().DeletePackage(gomock.Any(), "paro-valley").Return(nil)

		if rec := f.serve(http.MethodDelete, "/api/packages/paro-valley", "admin"); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		f := newRouterFixture(t)

		req := httptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK || rec.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Fatalf("unexpected preflight response %d %v", rec.Code, rec.Header())
		}
	})

	t.Run("plain OPTIONS reaches the router", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.serve(http.MethodOptions, "/api/bookings", "")
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", rec.Code)
		}
	})
}
