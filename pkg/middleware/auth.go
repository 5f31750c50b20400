package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

// Operator requires a valid operator bearer token and puts the operator
// identity into the request context.
func Operator(auth usecase.AuthService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			operator, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				rejectOperator(w, logger, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withOperator(r, operator)))
		})
	}
}

// OptionalOperator authenticates when a token is present and lets anonymous
// requests through. A bad token is still rejected.
func OptionalOperator(auth usecase.AuthService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			operator, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				rejectOperator(w, logger, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withOperator(r, operator)))
		})
	}
}

// RequireRole must run after Operator
func RequireRole(logger *zap.Logger, roles ...entity.AdminRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !slices.Contains(roles, entity.AdminRole(role)) {
				logger.Warn("Role check failed",
					zap.String("role", role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Insufficient role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func withOperator(r *http.Request, operator *usecase.Operator) context.Context {
	ctx := utils.SetOperatorContext(r.Context(), operator.ID, string(operator.Role))
	return utils.SetSessionContext(ctx, operator.Session)
}

func rejectOperator(w http.ResponseWriter, logger *zap.Logger, r *http.Request, err error) {
	if errors.Is(err, usecase.ErrUnauthorized) {
		logger.Warn("Operator token rejected", zap.Error(err), zap.String("path", r.URL.Path))
		utils.ResponseUnauthorized(w, "Invalid or expired session")
		return
	}

	logger.Error("Failed to authenticate operator", zap.Error(err))
	utils.ResponseInternalError(w, "Internal server error")
}
