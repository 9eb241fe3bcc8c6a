package updateUser

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusBooker/internal/http-server/handlers/user/updateUser/mocks"
	"campusBooker/internal/lib/logger/handlers/slogdiscard"
	"campusBooker/internal/models"
	"campusBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestUpdateUserHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		userID         string
		requestBody    string
		mockSetup      func(m *mocks.UserUpdater)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Update email",
			userID:      "4",
			requestBody: `{"email":"new@campus.edu"}`,
			mockSetup: func(m *mocks.UserUpdater) {
				m.On("UpdateUser", 4, mock.MatchedBy(func(u models.UserUpdate) bool {
					return u.Email != nil && *u.Email == "new@campus.edu" && u.Password == nil
				})).Return(&models.User{ID: 4, Username: "jsmith", Email: "new@campus.edu"}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"email":"new@campus.edu"`)
			},
		},
		{
			name:        "Password is hashed before storage",
			userID:      "4",
			requestBody: `{"password":"newpass"}`,
			mockSetup: func(m *mocks.UserUpdater) {
				m.On("UpdateUser", 4, mock.MatchedBy(func(u models.UserUpdate) bool {
					if u.Password == nil || *u.Password == "newpass" {
						return false
					}
					return bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte("newpass")) == nil
				})).Return(&models.User{ID: 4, Username: "jsmith"}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.NotContains(t, body, "newpass")
			},
		},
		{
			name:           "Empty payload",
			userID:         "4",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.UserUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"No fields to update"}`, body)
			},
		},
		{
			name:        "Not found",
			userID:      "77",
			requestBody: `{"fullName":"New Name"}`,
			mockSetup: func(m *mocks.UserUpdater) {
				m.On("UpdateUser", 77, mock.AnythingOfType("models.UserUpdate")).
					Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"Not Found"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewUserUpdater(t)
			tc.mockSetup(mockUpdater)

			handler := New(logger, mockUpdater)

			req := httptest.NewRequest(http.MethodPut, "/api/users/"+tc.userID, bytes.NewBufferString(tc.requestBody))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.userID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
