package updateBooking

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusBooker/internal/http-server/handlers/booking/updateBooking/mocks"
	"campusBooker/internal/lib/logger/handlers/slogdiscard"
	"campusBooker/internal/models"
	"campusBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		bookingID      string
		requestBody    string
		mockSetup      func(m *mocks.BookingUpdater)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Approve booking",
			bookingID:   "3",
			requestBody: `{"status":"approved"}`,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("UpdateBooking", 3, mock.MatchedBy(func(u models.BookingUpdate) bool {
					return u.Status != nil && *u.Status == "approved" && u.Purpose == nil
				})).Return(&models.Booking{ID: 3, Status: "approved"}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"approved"`)
			},
		},
		{
			name:        "Partial field set",
			bookingID:   "3",
			requestBody: `{"startTime":"14:00","duration":"3"}`,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("UpdateBooking", 3, mock.MatchedBy(func(u models.BookingUpdate) bool {
					return u.StartTime != nil && *u.StartTime == "14:00" &&
						u.Duration != nil && *u.Duration == "3" && u.Status == nil
				})).Return(&models.Booking{ID: 3, StartTime: "14:00", Duration: "3"}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"startTime":"14:00"`)
			},
		},
		{
			name:           "Empty payload",
			bookingID:      "3",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.BookingUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"No fields to update"}`, body)
			},
		},
		{
			name:        "Not found",
			bookingID:   "99",
			requestBody: `{"status":"rejected"}`,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("UpdateBooking", 99, mock.AnythingOfType("models.BookingUpdate")).
					Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"Not Found"}`, body)
			},
		},
		{
			name:           "Invalid id format",
			bookingID:      "abc",
			requestBody:    `{"status":"approved"}`,
			mockSetup:      func(m *mocks.BookingUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"invalid booking id format"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewBookingUpdater(t)
			tc.mockSetup(mockUpdater)

			handler := New(logger, mockUpdater)

			req := httptest.NewRequest(http.MethodPut, "/api/bookings/"+tc.bookingID, bytes.NewBufferString(tc.requestBody))

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
