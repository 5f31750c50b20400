package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/usecase"
	"tour-booking/internal/usecase/mocks"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// captureHandler records the operator identity it was called with
type captureHandler struct {
	called  bool
	id      uuid.UUID
	role    string
	session uuid.UUID
}

func (c *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.called = true
	c.id, _ = utils.GetOperatorIDFromContext(r.Context())
	c.role, _ = utils.GetRoleFromContext(r.Context())
	c.session, _ = utils.GetSessionFromContext(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func requestWithToken(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/stats/overview", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestOperator(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := &captureHandler{}

		rec := httptest.NewRecorder()
		Operator(mocks.NewMockAuthService(ctrl), zap.NewNop())(next).ServeHTTP(rec, requestWithToken(""))

		if rec.Code != http.StatusUnauthorized || next.called {
			t.Fatalf("expected 401 without calling next, got %d", rec.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockAuthService(ctrl)
		next := &captureHandler{}

		operator := &usecase.Operator{ID: uuid.New(), Role: entity.RoleStaff, Session: uuid.New()}
		auth.EXPECT().Authenticate(gomock.Any(), "good").Return(operator, nil)

		rec := httptest.NewRecorder()
		Operator(auth, zap.NewNop())(next).ServeHTTP(rec, requestWithToken("good"))

		if !next.called || rec.Code != http.StatusNoContent {
			t.Fatalf("expected next to run, got %d", rec.Code)
		}
		if next.id != operator.ID || next.role != string(entity.RoleStaff) || next.session != operator.Session {
			t.Fatalf("context not populated: %+v", next)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockAuthService(ctrl)
		next := &captureHandler{}

		auth.EXPECT().Authenticate(gomock.Any(), "revoked").Return(nil, usecase.ErrUnauthorized)

		rec := httptest.NewRecorder()
		Operator(auth, zap.NewNop())(next).ServeHTTP(rec, requestWithToken("revoked"))

		if rec.Code != http.StatusUnauthorized || next.called {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockAuthService(ctrl)
		next := &captureHandler{}

		auth.EXPECT().Authenticate(gomock.Any(), "good").Return(nil, errors.New("pool closed"))

		rec := httptest.NewRecorder()
		Operator(auth, zap.NewNop())(next).ServeHTTP(rec, requestWithToken("good"))

		if rec.Code != http.StatusInternalServerError || next.called {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestOptionalOperator(t *testing.T) {
	t.Run("anonymous passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := &captureHandler{}

		rec := httptest.NewRecorder()
		OptionalOperator(mocks.NewMockAuthService(ctrl), zap.NewNop())(next).ServeHTTP(rec, requestWithToken(""))

		if !next.called || next.id != uuid.Nil {
			t.Fatalf("expected anonymous pass-through, got %+v", next)
		}
	})

	t.Run("bad token is still rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockAuthService(ctrl)
		next := &captureHandler{}

		auth.EXPECT().Authenticate(gomock.Any(), "forged").Return(nil, usecase.ErrUnauthorized)

		rec := httptest.NewRecorder()
		OptionalOperator(auth, zap.NewNop())(next).ServeHTTP(rec, requestWithToken("forged"))

		if rec.Code != http.StatusUnauthorized || next.called {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	guard := RequireRole(zap.NewNop(), entity.RoleSuperAdmin, entity.RoleAdmin)

	tests := []struct {
		name     string
		role     entity.AdminRole
		wantCode int
	}{
		{"super admin", entity.RoleSuperAdmin, http.StatusNoContent},
		{"admin", entity.RoleAdmin, http.StatusNoContent},
		{"staff", entity.RoleStaff, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestWithToken("")
			req = req.WithContext(utils.SetOperatorContext(req.Context(), uuid.New(), string(tt.role)))

			rec := httptest.NewRecorder()
			guard(&captureHandler{}).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
		})
	}

	t.Run("no operator", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard(&captureHandler{}).ServeHTTP(rec, requestWithToken(""))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
