package auth

import (
	"context"
	"crypto/subtle"
	"os"
	"time"

	autherrors "hr-portal/internal/auth/errors"
	"hr-portal/internal/employee"
	"hr-portal/internal/identity"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const accessTokenTTL = 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (token string, resp AuthResponse, err error)

	// Me reflects the principal back with the permission list its role
	// grants, so the client can size its UI without guessing.
	Me(ctx context.Context, actor identity.Principal) (AuthResponse, error)
}

type service struct {
	employees employee.Repository
	authz     identity.Authorizer
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(employees employee.Repository, authz identity.Authorizer, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{employees: employees, authz: authz, now: time.Now, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, AuthResponse, error) {
	emp, err := s.employees.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same error whether the account exists or not.
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	// Passwords are stored as entered; the store holds demo accounts, not
	// real secrets. Constant-time compare all the same.
	if subtle.ConstantTimeCompare([]byte(emp.Password), []byte(req.Password)) != 1 {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if req.Role != "" && req.Role != emp.Role {
		return "", AuthResponse{}, autherrors.ErrRoleMismatch
	}

	token, err := s.generateToken(emp, accessTokenTTL)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("employee_id", emp.ID),
		zap.String("role", emp.Role),
	)

	return token, AuthResponse{
		ID:          emp.ID,
		Email:       emp.Email,
		Name:        emp.Name,
		Role:        emp.Role,
		Permissions: s.authz.Permissions(emp.Role),
	}, nil
}

func (s *service) Me(ctx context.Context, actor identity.Principal) (AuthResponse, error) {
	emp, err := s.employees.Get(ctx, actor.ID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	return AuthResponse{
		ID:          emp.ID,
		Email:       emp.Email,
		Name:        emp.Name,
		Role:        emp.Role,
		Permissions: s.authz.Permissions(emp.Role),
	}, nil
}

func (s *service) generateToken(emp *employee.Employee, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   emp.ID,
		"role":  emp.Role,
		"name":  emp.Name,
		"email": emp.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
