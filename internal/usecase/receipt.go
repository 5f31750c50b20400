package usecase

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/utils"

	"github.com/phpdave11/gofpdf"
)

// renderReceipt draws a one page receipt from the booking's frozen title and
// pricing. The current package is never consulted.
func renderReceipt(b *entity.Booking, printedAt time.Time) ([]byte, string, error) {
	receiptNo := utils.GenerateReceiptNumber(b.ID, b.CreatedAt)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking receipt "+receiptNo, false)
	pdf.AddPage()

	// Core fonts are cp1252; guest input arrives as UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("BOOKING RECEIPT"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, tr("Receipt No : "+receiptNo))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr("Printed    : "+printedAt.UTC().Format("2006-01-02 15:04")+" UTC"))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr("Status     : "+string(b.Status)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, tr("Guest"))
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, tr("Name  : "+orDash(b.Customer.FullName())))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr("Email : "+orDash(b.Customer.Email)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr("Phone : "+orDash(b.Customer.Phone)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, tr("Trip"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(orDash(b.PackageTitleSnapshot)), "", "", false)
	pdf.Cell(0, 6, tr("Travel date : "+utils.FormatDate(b.Trip.TravelDate)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Travelers   : "+strconv.Itoa(b.Trip.Travelers)))
	pdf.Ln(6)
	if b.Trip.SpecialRequests != "" {
		pdf.MultiCell(0, 6, tr("Requests    : "+b.Trip.SpecialRequests), "", "", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, tr("Pricing"))
	pdf.Ln(8)

	cur := b.Pricing.Currency
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr("Package price    : "+formatMinorUnits(b.Pricing.PackagePriceCents, cur)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("SDF fee          : "+formatMinorUnits(b.Pricing.SDFFeeCents, cur)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Total per person : "+formatMinorUnits(b.Pricing.TotalPerPersonCents, cur)))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Total: "+formatMinorUnits(b.Pricing.TotalGroupCents, cur)))
	pdf.Ln(12)

	if b.AdminReason != nil && *b.AdminReason != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, tr("Note: "+*b.AdminReason), "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render receipt %s: %w", receiptNo, err)
	}

	return buf.Bytes(), receiptNo + ".pdf", nil
}

// formatMinorUnits renders 270050 as "NU 2,700.50"
func formatMinorUnits(minor int64, currency string) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}

	whole := strconv.FormatInt(minor/100, 10)
	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	return fmt.Sprintf("%s %s%s.%02d", orDash(currency), sign, grouped.String(), minor%100)
}

func orDash(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "-"
	}
	return v
}
