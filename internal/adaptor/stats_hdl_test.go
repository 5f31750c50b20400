package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tour-booking/internal/dto/response"
	"tour-booking/internal/usecase"
	"tour-booking/internal/usecase/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestStatsHandler(t *testing.T) {
	t.Run("revenue by month passes the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockStatsService(ctrl)
		h := NewStatsHandler(svc, zap.NewNop())

		svc.EXPECT().RevenueByMonth(gomock.Any(), "2024-03-01", "2024-05-01").Return([]response.MonthRevenueResponse{
			{Month: "2024-03", Currency: "NU", TotalCents: 270000, Amount: 2700, Bookings: 1},
		}, nil)

		rec := httptest.NewRecorder()
		h.RevenueByMonth(rec, httptest.NewRequest(http.MethodGet, "/stats/revenue-by-month?from=2024-03-01&to=2024-05-01", nil))

		var months []response.MonthRevenueResponse
		if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &months); err != nil {
			t.Fatalf("bad data: %v", err)
		}
		if rec.Code != http.StatusOK || len(months) != 1 || months[0].Amount != 2700 {
			t.Fatalf("unexpected response %d %+v", rec.Code, months)
		}
	})

	t.Run("bad window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockStatsService(ctrl)
		h := NewStatsHandler(svc, zap.NewNop())

		svc.EXPECT().RevenueByMonth(gomock.Any(), "yesterday", "").
			Return(nil, fmt.Errorf("%w: invalid from date", usecase.ErrInvalidInput))

		rec := httptest.NewRecorder()
		h.RevenueByMonth(rec, httptest.NewRequest(http.MethodGet, "/stats/revenue-by-month?from=yesterday", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("most booked without bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockStatsService(ctrl)
		h := NewStatsHandler(svc, zap.NewNop())

		svc.EXPECT().MostBookedPackage(gomock.Any()).
			Return(&response.MostBookedPackageResponse{Message: response.NoConfirmedBookingsMessage}, nil)

		rec := httptest.NewRecorder()
		h.MostBookedPackage(rec, httptest.NewRequest(http.MethodGet, "/stats/most-booked-package", nil))

		var top response.MostBookedPackageResponse
		if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &top); err != nil {
			t.Fatalf("bad data: %v", err)
		}
		if top.Message != response.NoConfirmedBookingsMessage || top.Slug != "" {
			t.Fatalf("unexpected response %+v", top)
		}
	})
}
