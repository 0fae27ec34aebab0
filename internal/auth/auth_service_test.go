package auth_test

import (
	"context"
	"testing"

	"hr-portal/internal/auth"
	autherrors "hr-portal/internal/auth/errors"
	"hr-portal/internal/employee"
	"hr-portal/internal/identity"
	"hr-portal/internal/store/memstore"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func setupAuthTest(t *testing.T) auth.Service {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	authz, err := identity.NewAuthorizer()
	assert.NoError(t, err)

	repo := employee.NewRepository(memstore.New())
	assert.NoError(t, repo.Create(context.Background(), employee.Employee{
		ID: "e-1", Role: identity.RoleEmployee, Name: "Jane Doe",
		Email: "jane@example.com", Password: "password123",
	}))
	assert.NoError(t, repo.Create(context.Background(), employee.Employee{
		ID: "a-1", Role: identity.RoleAdmin, Name: "Pat Admin",
		Email: "admin@example.com", Password: "admin123",
	}))

	return auth.NewService(repo, authz)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns a signed token with identity claims", func(t *testing.T) {
		svc := setupAuthTest(t)

		token, resp, err := svc.Login(ctx, auth.LoginRequest{
			Email: "jane@example.com", Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "e-1", resp.ID)
		assert.Equal(t, identity.RoleEmployee, resp.Role)
		assert.Contains(t, resp.Permissions, "leave:submit")

		parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "e-1", claims["sub"])
		assert.Equal(t, identity.RoleEmployee, claims["role"])
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := setupAuthTest(t)

		_, _, err := svc.Login(ctx, auth.LoginRequest{
			Email: "jane@example.com", Password: "wrong",
		})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown account reports the same error", func(t *testing.T) {
		svc := setupAuthTest(t)

		_, _, err := svc.Login(ctx, auth.LoginRequest{
			Email: "ghost@example.com", Password: "password123",
		})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("role mismatch", func(t *testing.T) {
		svc := setupAuthTest(t)

		_, _, err := svc.Login(ctx, auth.LoginRequest{
			Email: "jane@example.com", Password: "password123", Role: identity.RoleAdmin,
		})
		assert.ErrorIs(t, err, autherrors.ErrRoleMismatch)
	})

	t.Run("matching requested role passes", func(t *testing.T) {
		svc := setupAuthTest(t)

		_, resp, err := svc.Login(ctx, auth.LoginRequest{
			Email: "admin@example.com", Password: "admin123", Role: identity.RoleAdmin,
		})
		assert.NoError(t, err)
		assert.Equal(t, identity.RoleAdmin, resp.Role)
		assert.Contains(t, resp.Permissions, "leave:decide")
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()

	t.Run("reflects the stored record", func(t *testing.T) {
		svc := setupAuthTest(t)

		resp, err := svc.Me(ctx, identity.Principal{ID: "e-1", Role: identity.RoleEmployee})
		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", resp.Name)
		assert.Contains(t, resp.Permissions, "paystub:read_own")
	})

	t.Run("deleted account", func(t *testing.T) {
		svc := setupAuthTest(t)

		_, err := svc.Me(ctx, identity.Principal{ID: "e-404", Role: identity.RoleEmployee})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}
