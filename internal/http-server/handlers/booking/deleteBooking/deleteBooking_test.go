package deleteBooking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusBooker/internal/http-server/handlers/booking/deleteBooking/mocks"
	"campusBooker/internal/lib/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestDeleteBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		bookingID      string
		mockSetup      func(m *mocks.BookingDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Success",
			bookingID: "4",
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("DeleteBooking", 4).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true}`,
		},
		{
			// Deleting a missing id reports success with no effect.
			name:      "Missing id still succeeds",
			bookingID: "99",
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("DeleteBooking", 99).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true}`,
		},
		{
			name:           "Invalid id format",
			bookingID:      "abc",
			mockSetup:      func(m *mocks.BookingDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid booking id format"}`,
		},
		{
			name:      "Storage failure",
			bookingID: "4",
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("DeleteBooking", 4).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to delete booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewBookingDeleter(t)
			tc.mockSetup(mockDeleter)

			handler := New(logger, mockDeleter)

			req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+tc.bookingID, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.bookingID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
