package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clearops/payroll/internal/domain"
	"github.com/clearops/payroll/internal/service/authservice"
	"github.com/clearops/payroll/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedError  string
		expectedHeader string
	}{
		{
			name: "Successful registration",
			body: `{"login":"newadmin","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newadmin", "password123").Return(&domain.Admin{
					ID:           1,
					Login:        "newadmin",
					PasswordHash: "hashedpassword",
				}, nil)
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode:   http.StatusOK,
			expectedHeader: "Bearer some-jwt-token",
		},
		{
			name: "Login already taken",
			body: `{"login":"existing","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "existing", "password123").Return(nil, domain.ErrLoginTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: domain.ErrLoginTaken.Error(),
		},
		{
			name: "Password too short",
			body: `{"login":"newadmin","password":"short"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newadmin", "short").
					Return(nil, &domain.FieldError{Field: "password", Reason: "must be at least 8 characters"})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "password must be at least 8 characters",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"login":"newadmin","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newadmin", "password123").Return(&domain.Admin{ID: 1, Login: "newadmin"}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/admin/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedHeader, rr.Header().Get("Authorization"))

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedError  string
		expectedHeader string
	}{
		{
			name: "Successful login",
			body: `{"login":"admin","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "admin", "password123").Return(&domain.Admin{ID: 3, Login: "admin"}, nil)
				service.EXPECT().GenerateToken(3).Return("some-jwt-token", nil)
			},
			expectedCode:   http.StatusOK,
			expectedHeader: "Bearer some-jwt-token",
		},
		{
			name: "Invalid credentials",
			body: `{"login":"admin","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "admin", "wrongpassword").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Database unavailable",
			body: `{"login":"admin","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "admin", "password123").Return(nil, errors.New("connection refused"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"login":"admin","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "admin", "password123").Return(&domain.Admin{ID: 3}, nil)
				service.EXPECT().GenerateToken(3).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/admin/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedHeader, rr.Header().Get("Authorization"))

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
