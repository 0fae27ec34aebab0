package employee_test

import (
	"context"
	"strings"
	"testing"

	"hr-portal/internal/employee"
	employeeerrors "hr-portal/internal/employee/errors"
	"hr-portal/internal/identity"
	"hr-portal/internal/shared/apperror"
	"hr-portal/internal/store"
	"hr-portal/internal/store/memstore"

	"github.com/stretchr/testify/assert"
)

var (
	admin = identity.Principal{ID: "a-1", Role: identity.RoleAdmin}
	self  = identity.Principal{ID: "e-1", Role: identity.RoleEmployee}
	other = identity.Principal{ID: "e-2", Role: identity.RoleEmployee}
)

type fakeCascade struct {
	deleted []string
	err     error
}

func (f *fakeCascade) DeleteByEmployee(ctx context.Context, employeeID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, employeeID)
	return nil
}

type employeeDeps struct {
	service employee.Service
	repo    employee.Repository
	cascade *fakeCascade
}

func setupEmployeeTest(t *testing.T) *employeeDeps {
	t.Helper()

	authz, err := identity.NewAuthorizer()
	assert.NoError(t, err)

	repo := employee.NewRepository(memstore.New())
	assert.NoError(t, repo.Create(context.Background(), employee.Employee{
		ID: "a-1", Role: identity.RoleAdmin, Name: "Pat Admin", Email: "admin@example.com",
	}))
	assert.NoError(t, repo.Create(context.Background(), employee.Employee{
		ID: "e-1", Role: identity.RoleEmployee, Name: "Jane Doe", Email: "jane@example.com",
	}))

	cascade := &fakeCascade{}
	svc := employee.NewService(repo, authz, cascade, nil)
	return &employeeDeps{service: svc, repo: repo, cascade: cascade}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults role and status", func(t *testing.T) {
		deps := setupEmployeeTest(t)

		resp, err := deps.service.Create(ctx, admin, employee.CreateEmployeeRequest{
			Name: "Sam Smith", Email: "sam@example.com", Password: "pw",
		})

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(resp.ID, "e-"))
		assert.Equal(t, identity.RoleEmployee, resp.Role)
		assert.Equal(t, employee.StatusActive, resp.Status)
	})

	t.Run("admin accounts get the a- prefix", func(t *testing.T) {
		deps := setupEmployeeTest(t)

		resp, err := deps.service.Create(ctx, admin, employee.CreateEmployeeRequest{
			Name: "Second Admin", Email: "admin2@example.com", Password: "pw", Role: identity.RoleAdmin,
		})

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(resp.ID, "a-"))
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		deps := setupEmployeeTest(t)

		_, err := deps.service.Create(ctx, admin, employee.CreateEmployeeRequest{
			Name: "Impostor", Email: "jane@example.com", Password: "pw",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrEmailTaken)
	})

	t.Run("employees cannot create accounts", func(t *testing.T) {
		deps := setupEmployeeTest(t)

		_, err := deps.service.Create(ctx, self, employee.CreateEmployeeRequest{
			Name: "Nope", Email: "nope@example.com", Password: "pw",
		})
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestEmployeeService_Directory(t *testing.T) {
	ctx := context.Background()
	deps := setupEmployeeTest(t)

	_, err := deps.service.Create(ctx, admin, employee.CreateEmployeeRequest{
		Name: "Amy Adams", Email: "amy@example.com", Password: "pw",
	})
	assert.NoError(t, err)

	t.Run("excludes admins and sorts by name", func(t *testing.T) {
		resp, err := deps.service.Directory(ctx, self)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Amy Adams", resp[0].Name)
		assert.Equal(t, "Jane Doe", resp[1].Name)
		for _, e := range resp {
			assert.NotEqual(t, identity.RoleAdmin, e.Role)
		}
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()
	deps := setupEmployeeTest(t)

	t.Run("self", func(t *testing.T) {
		resp, err := deps.service.GetByID(ctx, self, "e-1")
		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", resp.Name)
	})

	t.Run("admin reads anyone", func(t *testing.T) {
		_, err := deps.service.GetByID(ctx, admin, "e-1")
		assert.NoError(t, err)
	})

	t.Run("other employees forbidden", func(t *testing.T) {
		_, err := deps.service.GetByID(ctx, other, "e-1")
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("missing employee", func(t *testing.T) {
		_, err := deps.service.GetByID(ctx, admin, "e-404")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("patches only provided fields", func(t *testing.T) {
		deps := setupEmployeeTest(t)
		dept := "Operations"

		resp, err := deps.service.Update(ctx, admin, "e-1", employee.UpdateEmployeeRequest{
			Department: &dept,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Operations", resp.Department)
		assert.Equal(t, "Jane Doe", resp.Name)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		deps := setupEmployeeTest(t)

		_, err := deps.service.Update(ctx, admin, "e-1", employee.UpdateEmployeeRequest{})
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("employees cannot update directly", func(t *testing.T) {
		deps := setupEmployeeTest(t)
		name := "New Name"

		_, err := deps.service.Update(ctx, self, "e-1", employee.UpdateEmployeeRequest{Name: &name})
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades to onboarding", func(t *testing.T) {
		deps := setupEmployeeTest(t)

		assert.NoError(t, deps.service.Delete(ctx, admin, "e-1"))

		_, err := deps.repo.Get(ctx, "e-1")
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.Equal(t, []string{"e-1"}, deps.cascade.deleted)
	})

	t.Run("missing employee", func(t *testing.T) {
		deps := setupEmployeeTest(t)

		err := deps.service.Delete(ctx, admin, "e-404")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.Empty(t, deps.cascade.deleted)
	})

	t.Run("employees cannot delete", func(t *testing.T) {
		deps := setupEmployeeTest(t)

		err := deps.service.Delete(ctx, self, "e-1")
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}
