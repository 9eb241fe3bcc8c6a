package getBookingInfo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusBooker/internal/http-server/handlers/booking/getBookingInfo/mocks"
	"campusBooker/internal/lib/logger/handlers/slogdiscard"
	"campusBooker/internal/models"
	"campusBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestGetBookingInfoHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		bookingID      string
		mockSetup      func(m *mocks.BookingProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:      "Success",
			bookingID: "5",
			mockSetup: func(m *mocks.BookingProvider) {
				m.On("Booking", 5).Return(&models.Booking{
					ID: 5, HallID: 1, UserID: 2, Purpose: "Seminar", Status: "approved",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"id":5`)
				assert.Contains(t, body, `"purpose":"Seminar"`)
			},
		},
		{
			name:      "Not found",
			bookingID: "99",
			mockSetup: func(m *mocks.BookingProvider) {
				m.On("Booking", 99).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"Not Found"}`, body)
			},
		},
		{
			name:           "Invalid id format",
			bookingID:      "abc",
			mockSetup:      func(m *mocks.BookingProvider) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"invalid booking id format"}`, body)
			},
		},
		{
			name:      "Storage failure",
			bookingID: "5",
			mockSetup: func(m *mocks.BookingProvider) {
				m.On("Booking", 5).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"failed to get booking"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewBookingProvider(t)
			tc.mockSetup(mockProvider)

			handler := New(logger, mockProvider)

			req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+tc.bookingID, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.bookingID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
