package usecase

import (
	"bytes"
	"compress/zlib"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"tour-booking/internal/data/entity"

	"github.com/google/uuid"
)

var pdfStream = regexp.MustCompile(`(?s)stream\r?\n(.*?)\r?\nendstream`)

// pageText inflates every content stream of a rendered PDF
func pageText(t *testing.T, raw []byte) string {
	t.Helper()
	var out strings.Builder
	for _, m := range pdfStream.FindAllSubmatch(raw, -1) {
		zr, err := zlib.NewReader(bytes.NewReader(m[1]))
		if err != nil {
			continue
		}
		b, err := io.ReadAll(zr)
		if err != nil {
			t.Fatalf("inflate stream: %v", err)
		}
		out.Write(b)
	}
	return out.String()
}

func receiptBooking() *entity.Booking {
	created := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	return &entity.Booking{
		Base:                 entity.Base{ID: uuid.MustParse("0f3a9c2e-1b2c-4d5e-8f90-123456789abc"), CreatedAt: created, UpdatedAt: created},
		PackageTitleSnapshot: "Punakha Dzong Trek",
		Status:               entity.BookingStatusConfirmed,
		Customer:             entity.Customer{FirstName: "Zoë", LastName: "Dorji", Email: "zoe@example.com"},
		Trip:                 entity.Trip{TravelDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Travelers: 2, SpecialRequests: "Café stop in Thimphu"},
		Pricing:              entity.Pricing{Currency: "USD", PackagePriceCents: 240000, TotalPerPersonCents: 120000, TotalGroupCents: 240000},
	}
}

func TestRenderReceipt(t *testing.T) {
	t.Run("names the file after the receipt number", func(t *testing.T) {
		raw, name, err := renderReceipt(receiptBooking(), time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(raw, []byte("%PDF")) {
			t.Fatalf("output is not a PDF")
		}
		if name != "TOUR-20240305-0F3A9C2E.pdf" {
			t.Fatalf("unexpected filename %s", name)
		}
	})

	t.Run("guest text is written in the core font encoding", func(t *testing.T) {
		raw, _, err := renderReceipt(receiptBooking(), time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := pageText(t, raw)
		if !strings.Contains(text, "Zo\xeb Dorji") {
			t.Fatalf("expected cp1252 guest name in page content")
		}
		if !strings.Contains(text, "Caf\xe9 stop") {
			t.Fatalf("expected cp1252 special requests in page content")
		}
		if strings.Contains(text, "Zoë") {
			t.Fatalf("raw UTF-8 leaked into page content")
		}
	})

	t.Run("characters outside the code page still render", func(t *testing.T) {
		b := receiptBooking()
		b.Customer.FirstName = "Łukasz"
		reason := "Перевод получен"
		b.AdminReason = &reason

		raw, _, err := renderReceipt(b, time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(raw) == 0 {
			t.Fatalf("empty receipt")
		}
	})
}
