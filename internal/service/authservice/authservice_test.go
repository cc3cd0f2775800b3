package authservice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/clearops/payroll/internal/domain"
	"github.com/clearops/payroll/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService, 15*time.Minute)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, adminRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedAdmin *domain.Admin
		expectedError error
	}{
		{
			name:     "Successful registration",
			login:    "payroll_admin",
			password: "testpassword",
			prepareMock: func() {
				adminRepo.EXPECT().FindByLogin(context.Background(), "payroll_admin").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				adminRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
					admin.ID = 1
					return admin, nil
				})
			},
			expectedAdmin: &domain.Admin{
				ID:           1,
				Login:        "payroll_admin",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name:          "Login too short",
			login:         "ab",
			password:      "testpassword",
			prepareMock:   func() {},
			expectedError: &domain.FieldError{Field: "login", Reason: "must be between 3 and 50 characters"},
		},
		{
			name:          "Login too long",
			login:         strings.Repeat("a", 51),
			password:      "testpassword",
			prepareMock:   func() {},
			expectedError: &domain.FieldError{Field: "login", Reason: "must be between 3 and 50 characters"},
		},
		{
			name:          "Password too short",
			login:         "payroll_admin",
			password:      "short",
			prepareMock:   func() {},
			expectedError: &domain.FieldError{Field: "password", Reason: "must be at least 8 characters"},
		},
		{
			name:     "Admin already exists",
			login:    "payroll_admin",
			password: "testpassword",
			prepareMock: func() {
				adminRepo.EXPECT().FindByLogin(context.Background(), "payroll_admin").Return(&domain.Admin{Login: "payroll_admin"}, nil)
			},
			expectedError: domain.ErrLoginTaken,
		},
		{
			name:     "Error finding admin",
			login:    "payroll_admin",
			password: "testpassword",
			prepareMock: func() {
				adminRepo.EXPECT().FindByLogin(context.Background(), "payroll_admin").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			login:    "payroll_admin",
			password: "testpassword",
			prepareMock: func() {
				adminRepo.EXPECT().FindByLogin(context.Background(), "payroll_admin").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Error creating admin",
			login:    "payroll_admin",
			password: "testpassword",
			prepareMock: func() {
				adminRepo.EXPECT().FindByLogin(context.Background(), "payroll_admin").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				adminRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, domain.ErrLoginTaken)
			},
			expectedError: domain.ErrLoginTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			admin, err := service.Register(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, admin)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAdmin, admin)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, adminRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedAdmin *domain.Admin
		expectedError error
	}{
		{
			name:     "Successful authentication",
			login:    "payroll_admin",
			password: "testpassword",
			prepareMock: func() {
				adminRepo.EXPECT().FindByLogin(context.Background(), "payroll_admin").Return(&domain.Admin{
					ID:           1,
					Login:        "payroll_admin",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedAdmin: &domain.Admin{
				ID:           1,
				Login:        "payroll_admin",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name:     "Invalid credentials - admin not found",
			login:    "payroll_admin",
			password: "testpassword",
			prepareMock: func() {
				adminRepo.EXPECT().FindByLogin(context.Background(), "payroll_admin").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Invalid credentials - incorrect password",
			login:    "payroll_admin",
			password: "wrongpassword",
			prepareMock: func() {
				adminRepo.EXPECT().FindByLogin(context.Background(), "payroll_admin").Return(&domain.Admin{
					ID:           1,
					Login:        "payroll_admin",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Database error",
			login:    "payroll_admin",
			password: "testpassword",
			prepareMock: func() {
				adminRepo.EXPECT().FindByLogin(context.Background(), "payroll_admin").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			admin, err := service.Authenticate(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAdmin, admin)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		adminID       int
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name:    "Successful token generation",
			adminID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.Any()).DoAndReturn(func(adminID int, expiresAt time.Time) (string, error) {
					assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, time.Minute)
					return "generated-token", nil
				})
			},
			expectedToken: "generated-token",
		},
		{
			name:    "Error generating token",
			adminID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(tt.adminID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
