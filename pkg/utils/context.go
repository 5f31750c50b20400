package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	OperatorIDKey contextKey = "operator_id"
	RoleKey       contextKey = "role"
	SessionKey    contextKey = "session"
)

func GetOperatorIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	val := ctx.Value(OperatorIDKey)
	if val == nil {
		return uuid.Nil, false
	}

	id, ok := val.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

func SetOperatorContext(ctx context.Context, operatorID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, OperatorIDKey, operatorID)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

// GetSessionFromContext returns the session token carried by the operator JWT
func GetSessionFromContext(ctx context.Context) (uuid.UUID, bool) {
	val := ctx.Value(SessionKey)
	if val == nil {
		return uuid.Nil, false
	}

	token, ok := val.(uuid.UUID)
	return token, ok
}

func SetSessionContext(ctx context.Context, token uuid.UUID) context.Context {
	return context.WithValue(ctx, SessionKey, token)
}
