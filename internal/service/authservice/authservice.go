package authservice

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/clearops/payroll/internal/domain"
	"github.com/clearops/payroll/pkg/auth"
	"go.uber.org/zap"
)

const (
	minLoginLen    = 3
	maxLoginLen    = 50
	minPasswordLen = 8
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Admin, error)
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
}

type Service struct {
	adminRepo   Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		adminRepo:   repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, login, password string) (*domain.Admin, error) {
	if n := utf8.RuneCountInString(login); n < minLoginLen || n > maxLoginLen {
		return nil, &domain.FieldError{Field: "login", Reason: "must be between 3 and 50 characters"}
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return nil, &domain.FieldError{Field: "password", Reason: "must be at least 8 characters"}
	}

	existing, err := s.adminRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find admin: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("admin already exists", zap.String("login", login))
		return nil, domain.ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	admin, err := s.adminRepo.Create(ctx, &domain.Admin{
		Login:        login,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		zap.L().Error("can't create admin: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("admin successfully registered", zap.String("login", login))
	return admin, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Admin, error) {
	admin, err := s.adminRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find admin: ", zap.Error(err))
		return nil, err
	}
	if admin == nil {
		zap.L().Info("unknown admin login", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(admin.PasswordHash, password); !ok {
		zap.L().Info("wrong admin password", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("admin successfully authenticated", zap.String("login", login))
	return admin, nil
}

func (s *Service) GenerateToken(adminID int) (string, error) {
	token, err := s.jwtService.GenerateJWT(adminID, time.Now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
