package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session backs one operator token; revoking it invalidates the token.
type Session struct {
	BaseSimple
	AdminID   uuid.UUID  `db:"admin_id"`
	Token     uuid.UUID  `db:"token"`
	UserAgent *string    `db:"user_agent"`
	IPAddress *string    `db:"ip_address"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
