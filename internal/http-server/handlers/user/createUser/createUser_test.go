package createUser

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusBooker/internal/http-server/handlers/user/createUser/mocks"
	"campusBooker/internal/lib/logger/handlers/slogdiscard"
	"campusBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.UserCreator)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"username": "jsmith",
				"password": "s3cret",
				"fullName": "John Smith",
				"email": "jsmith@campus.edu",
				"role": "organizer"
			}`,
			mockSetup: func(m *mocks.UserCreator) {
				m.On("CreateUser", mock.MatchedBy(func(u models.User) bool {
					if u.Username != "jsmith" || u.Role != "organizer" {
						return false
					}
					return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")) == nil
				})).Return(&models.User{
					ID:       7,
					Username: "jsmith",
					FullName: "John Smith",
					Email:    "jsmith@campus.edu",
					Role:     "organizer",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"username":"jsmith"`)
				assert.NotContains(t, body, "s3cret")
				assert.NotContains(t, body, "passwordHash")
			},
		},
		{
			name:           "Missing username",
			requestBody:    `{"password":"s3cret","fullName":"John Smith","email":"jsmith@campus.edu","role":"student"}`,
			mockSetup:      func(m *mocks.UserCreator) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"username is required"}`, body)
			},
		},
		{
			name:           "Missing password",
			requestBody:    `{"username":"jsmith","fullName":"John Smith","email":"jsmith@campus.edu","role":"student"}`,
			mockSetup:      func(m *mocks.UserCreator) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"password is required"}`, body)
			},
		},
		{
			name:        "Storage failure",
			requestBody: `{"username":"jsmith","password":"s3cret","fullName":"John Smith","email":"jsmith@campus.edu","role":"student"}`,
			mockSetup: func(m *mocks.UserCreator) {
				m.On("CreateUser", mock.AnythingOfType("models.User")).
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"failed to create user"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewUserCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tc.requestBody))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
