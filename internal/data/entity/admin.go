package entity

import (
	"strings"
	"time"
)

type AdminRole string

const (
	RoleSuperAdmin AdminRole = "SUPER_ADMIN"
	RoleAdmin      AdminRole = "ADMIN"
	RoleStaff      AdminRole = "STAFF"
)

func (r AdminRole) IsValid() bool {
	return r == RoleSuperAdmin || r == RoleAdmin || r == RoleStaff
}

// Admin is an operator account
type Admin struct {
	Base
	FirstName     string     `db:"first_name"`
	LastName      string     `db:"last_name"`
	Email         string     `db:"email"`
	PasswordHash  string     `db:"password_hash"`
	Role          AdminRole  `db:"role"`
	Permissions   []string   `db:"permissions"`
	IsActive      bool       `db:"is_active"`
	LastLoginAt   *time.Time `db:"last_login_at"`
	LoginAttempts int        `db:"login_attempts"`
	LockUntil     *time.Time `db:"lock_until"`
	AvatarURL     *string    `db:"avatar_url"`
}

func (a *Admin) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

func (a *Admin) IsLocked(now time.Time) bool {
	return a.LockUntil != nil && a.LockUntil.After(now)
}

// RegisterFailedLogin counts a bad password. An expired lock restarts the
// count at 1; reaching maxAttempts locks the account for lockFor.
func (a *Admin) RegisterFailedLogin(now time.Time, maxAttempts int, lockFor time.Duration) {
	if a.LockUntil != nil && !a.LockUntil.After(now) {
		a.LoginAttempts = 1
		a.LockUntil = nil
	} else {
		a.LoginAttempts++
		if a.LoginAttempts >= maxAttempts && !a.IsLocked(now) {
			until := now.Add(lockFor)
			a.LockUntil = &until
		}
	}
	a.UpdatedAt = now
}

func (a *Admin) RegisterSuccessfulLogin(now time.Time) {
	a.LastLoginAt = &now
	a.LoginAttempts = 0
	a.LockUntil = nil
	a.UpdatedAt = now
}
