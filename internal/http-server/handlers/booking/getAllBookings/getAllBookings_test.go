package getAllBookings

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusBooker/internal/http-server/handlers/booking/getAllBookings/mocks"
	"campusBooker/internal/lib/logger/handlers/slogdiscard"
	"campusBooker/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGetAllBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.BookingsProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "No filters",
			url:  "/api/bookings",
			mockSetup: func(m *mocks.BookingsProvider) {
				m.On("AllBookings", models.BookingFilter{}).Return([]models.Booking{
					{ID: 2, Purpose: "Workshop", HallName: "Conference Hall", Username: "student"},
					{ID: 1, Purpose: "Seminar", HallName: "Main Auditorium", Username: "admin"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"hallName":"Conference Hall"`)
				assert.Contains(t, body, `"username":"admin"`)
			},
		},
		{
			name: "All filters are passed through",
			url:  "/api/bookings?status=approved&hallId=3&userId=5&search=seminar",
			mockSetup: func(m *mocks.BookingsProvider) {
				m.On("AllBookings", models.BookingFilter{
					Status: "approved",
					HallID: 3,
					UserID: 5,
					Search: "seminar",
				}).Return([]models.Booking{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `[]`, body)
			},
		},
		{
			name: "Storage failure",
			url:  "/api/bookings",
			mockSetup: func(m *mocks.BookingsProvider) {
				m.On("AllBookings", models.BookingFilter{}).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"failed to get bookings"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewBookingsProvider(t)
			tc.mockSetup(mockProvider)

			handler := New(logger, mockProvider)

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
