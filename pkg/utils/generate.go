package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(uuidStr))
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== RECEIPT NUMBER ====================

// GenerateReceiptNumber derives a stable receipt number from the booking id
// and its creation day, so reprinting a receipt never changes the number.
// Format: TOUR-YYYYMMDD-XXXXXXXX
func GenerateReceiptNumber(bookingID uuid.UUID, createdAt time.Time) string {
	short := strings.ToUpper(strings.ReplaceAll(bookingID.String(), "-", "")[:8])
	return fmt.Sprintf("TOUR-%s-%s", createdAt.UTC().Format("20060102"), short)
}
