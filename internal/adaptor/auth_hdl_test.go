package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/internal/usecase"
	"tour-booking/internal/usecase/mocks"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestAuthHandler_Register(t *testing.T) {
	body := `{"firstName":"Pema","lastName":"Wangmo","email":"pema@example.com","password":"s3cretpass"}`

	t.Run("anonymous request passes no operator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockAuthService(ctrl)
		h := NewAuthHandler(svc, zap.NewNop())

		svc.EXPECT().Register(gomock.Any(), gomock.Nil(), gomock.Any()).
			Return(&response.AdminResponse{Email: "pema@example.com", Role: entity.RoleSuperAdmin}, nil)

		rec := httptest.NewRecorder()
		h.Register(rec, httptest.NewRequest(http.MethodPost, "/admin/register", strings.NewReader(body)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
	})

	t.Run("authenticated request passes the operator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockAuthService(ctrl)
		h := NewAuthHandler(svc, zap.NewNop())

		operatorID, session := uuid.New(), uuid.New()
		svc.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, actor *usecase.Operator, _ *request.RegisterAdminRequest) (*response.AdminResponse, error) {
				if actor == nil || actor.ID != operatorID || actor.Role != entity.RoleAdmin || actor.Session != session {
					t.Fatalf("unexpected actor %+v", actor)
				}
				return nil, usecase.ErrForbidden
			})

		req := httptest.NewRequest(http.MethodPost, "/admin/register", strings.NewReader(body))
		ctx := utils.SetOperatorContext(req.Context(), operatorID, string(entity.RoleAdmin))
		ctx = utils.SetSessionContext(ctx, session)

		rec := httptest.NewRecorder()
		h.Register(rec, req.WithContext(ctx))

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("records client metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockAuthService(ctrl)
		h := NewAuthHandler(svc, zap.NewNop())

		svc.EXPECT().Login(gomock.Any(), gomock.Any(), usecase.SessionMeta{UserAgent: "curl/8", IPAddress: "10.0.0.7"}).
			Return(&response.AuthResponse{Token: "jwt"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"email":"pema@example.com","password":"s3cretpass"}`))
		req.RemoteAddr = "10.0.0.7:53211"
		req.Header.Set("User-Agent", "curl/8")

		rec := httptest.NewRecorder()
		h.Login(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("locked account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockAuthService(ctrl)
		h := NewAuthHandler(svc, zap.NewNop())

		svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, usecase.ErrLocked)

		rec := httptest.NewRecorder()
		h.Login(rec, httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{}`)))

		if rec.Code != http.StatusLocked {
			t.Fatalf("expected 423, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("without session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewAuthHandler(mocks.NewMockAuthService(ctrl), zap.NewNop())

		rec := httptest.NewRecorder()
		h.Logout(rec, httptest.NewRequest(http.MethodPost, "/admin/logout", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("revokes the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockAuthService(ctrl)
		h := NewAuthHandler(svc, zap.NewNop())

		session := uuid.New()
		svc.EXPECT().Logout(gomock.Any(), session).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
		rec := httptest.NewRecorder()
		h.Logout(rec, req.WithContext(utils.SetSessionContext(req.Context(), session)))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
