package entity

import (
	"testing"
	"time"
)

func TestNewStatusChange(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("keeps a trimmed reason", func(t *testing.T) {
		change := NewStatusChange(BookingStatusRejected, "  dates unavailable ", at)
		if change.Reason == nil || *change.Reason != "dates unavailable" {
			t.Fatalf("expected trimmed reason, got %v", change.Reason)
		}
		if change.Status != BookingStatusRejected || !change.At.Equal(at) {
			t.Fatalf("unexpected change %+v", change)
		}
	})

	t.Run("blank reason is absent", func(t *testing.T) {
		if change := NewStatusChange(BookingStatusConfirmed, "   ", at); change.Reason != nil {
			t.Fatalf("expected no reason, got %q", *change.Reason)
		}
	})

	t.Run("cancel never records a reason", func(t *testing.T) {
		if change := NewStatusChange(BookingStatusCancelled, "customer asked", at); change.Reason != nil {
			t.Fatalf("expected no reason, got %q", *change.Reason)
		}
	})
}

func TestAdmin_Lockout(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	lockFor := 30 * time.Minute

	t.Run("locks on the last allowed attempt", func(t *testing.T) {
		a := &Admin{}
		for i := 0; i < 4; i++ {
			a.RegisterFailedLogin(now, 5, lockFor)
		}
		if a.IsLocked(now) {
			t.Fatalf("locked after 4 attempts")
		}

		a.RegisterFailedLogin(now, 5, lockFor)
		if !a.IsLocked(now) || !a.LockUntil.Equal(now.Add(lockFor)) {
			t.Fatalf("expected lock until %v, got %v", now.Add(lockFor), a.LockUntil)
		}
	})

	t.Run("expired lock restarts the count", func(t *testing.T) {
		until := now.Add(-time.Minute)
		a := &Admin{LoginAttempts: 5, LockUntil: &until}

		if a.IsLocked(now) {
			t.Fatalf("expired lock still active")
		}

		a.RegisterFailedLogin(now, 5, lockFor)
		if a.LoginAttempts != 1 || a.LockUntil != nil {
			t.Fatalf("expected fresh count, got attempts=%d lock=%v", a.LoginAttempts, a.LockUntil)
		}
	})

	t.Run("successful login resets", func(t *testing.T) {
		until := now.Add(time.Minute)
		a := &Admin{LoginAttempts: 3, LockUntil: &until}

		a.RegisterSuccessfulLogin(now)
		if a.LoginAttempts != 0 || a.LockUntil != nil || a.LastLoginAt == nil {
			t.Fatalf("expected reset state, got %+v", a)
		}
	})
}

func TestBookingPatch_IsEmpty(t *testing.T) {
	if !(BookingPatch{}).IsEmpty() {
		t.Fatalf("zero patch should be empty")
	}

	phone := "+975"
	if (BookingPatch{Phone: &phone}).IsEmpty() {
		t.Fatalf("patch with phone should not be empty")
	}
}
