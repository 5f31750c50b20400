package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type AdminResponse struct {
	ID          string           `json:"id"`
	FirstName   string           `json:"firstName"`
	LastName    string           `json:"lastName"`
	Email       string           `json:"email"`
	Role        entity.AdminRole `json:"role"`
	Permissions []string         `json:"permissions"`
	IsActive    bool             `json:"isActive"`
	LastLoginAt *time.Time       `json:"lastLoginAt,omitempty"`
	AvatarURL   *string          `json:"avatarUrl,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type AuthResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Admin     AdminResponse `json:"admin"`
}

// Helper converters
func AdminToResponse(admin *entity.Admin) AdminResponse {
	permissions := admin.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	return AdminResponse{
		ID:          admin.ID.String(),
		FirstName:   admin.FirstName,
		LastName:    admin.LastName,
		Email:       admin.Email,
		Role:        admin.Role,
		Permissions: permissions,
		IsActive:    admin.IsActive,
		LastLoginAt: admin.LastLoginAt,
		AvatarURL:   admin.AvatarURL,
		CreatedAt:   admin.CreatedAt,
	}
}
