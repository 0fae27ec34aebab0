package profilechange_test

import (
	"context"
	"strings"
	"testing"

	"hr-portal/internal/approval"
	"hr-portal/internal/employee"
	"hr-portal/internal/identity"
	"hr-portal/internal/profilechange"
	profilechangeerrors "hr-portal/internal/profilechange/errors"
	"hr-portal/internal/shared/apperror"
	"hr-portal/internal/store/memstore"

	"github.com/stretchr/testify/assert"
)

var (
	admin = identity.Principal{ID: "a-1", Role: identity.RoleAdmin}
	owner = identity.Principal{ID: "e-1", Role: identity.RoleEmployee}
)

type changeDeps struct {
	service   profilechange.Service
	employees employee.Repository
}

func setupChangeTest(t *testing.T) *changeDeps {
	t.Helper()

	authz, err := identity.NewAuthorizer()
	assert.NoError(t, err)

	client := memstore.New()
	employees := employee.NewRepository(client)
	assert.NoError(t, employees.Create(context.Background(), employee.Employee{
		ID:        "e-1",
		Role:      identity.RoleEmployee,
		Name:      "Jane Doe",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "555-0100",
	}))

	svc := profilechange.NewService(client, authz, employees, nil)
	return &changeDeps{service: svc, employees: employees}
}

func strptr(s string) *string { return &s }

func TestProfileChangeService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success freezes the submitter snapshot", func(t *testing.T) {
		deps := setupChangeTest(t)

		resp, err := deps.service.Submit(ctx, owner, profilechange.SubmitChangeRequest{
			RequestedChanges: employee.ProfileChanges{LastName: strptr("Miller")},
		})

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(resp.ID, "pcr-"))
		assert.Equal(t, "Jane Doe", resp.EmployeeName)
		assert.Equal(t, "jane@example.com", resp.EmployeeEmail)
		assert.Equal(t, profilechange.StatusPending, resp.Status)
	})

	t.Run("empty change set rejected", func(t *testing.T) {
		deps := setupChangeTest(t)

		_, err := deps.service.Submit(ctx, owner, profilechange.SubmitChangeRequest{})
		assert.ErrorIs(t, err, profilechangeerrors.ErrNoChangesRequested)
	})

	t.Run("unknown submitter", func(t *testing.T) {
		deps := setupChangeTest(t)
		ghost := identity.Principal{ID: "e-404", Role: identity.RoleEmployee}

		_, err := deps.service.Submit(ctx, ghost, profilechange.SubmitChangeRequest{
			RequestedChanges: employee.ProfileChanges{Phone: strptr("555-0199")},
		})
		assert.ErrorIs(t, err, profilechangeerrors.ErrSubmitterNotFound)
	})

	t.Run("admin cannot submit", func(t *testing.T) {
		deps := setupChangeTest(t)

		_, err := deps.service.Submit(ctx, admin, profilechange.SubmitChangeRequest{
			RequestedChanges: employee.ProfileChanges{Phone: strptr("555-0199")},
		})
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestProfileChangeService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only the requested fields", func(t *testing.T) {
		deps := setupChangeTest(t)

		submitted, err := deps.service.Submit(ctx, owner, profilechange.SubmitChangeRequest{
			RequestedChanges: employee.ProfileChanges{LastName: strptr("Miller")},
		})
		assert.NoError(t, err)

		resp, err := deps.service.Approve(ctx, admin, submitted.ID, "ok")
		assert.NoError(t, err)
		assert.Equal(t, profilechange.StatusApproved, resp.Status)

		empl, err := deps.employees.Get(ctx, "e-1")
		assert.NoError(t, err)
		assert.Equal(t, "Miller", empl.LastName)
		assert.Equal(t, "Jane", empl.FirstName)
		assert.Equal(t, "555-0100", empl.Phone)
	})

	t.Run("snapshot survives later employee edits", func(t *testing.T) {
		deps := setupChangeTest(t)

		submitted, err := deps.service.Submit(ctx, owner, profilechange.SubmitChangeRequest{
			RequestedChanges: employee.ProfileChanges{Phone: strptr("555-0199")},
		})
		assert.NoError(t, err)

		_, err = deps.employees.Patch(ctx, "e-1", map[string]any{"name": "Renamed Person"})
		assert.NoError(t, err)

		resp, err := deps.service.Approve(ctx, admin, submitted.ID, "")
		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", resp.EmployeeName)
	})

	t.Run("deny leaves the employee untouched", func(t *testing.T) {
		deps := setupChangeTest(t)

		submitted, err := deps.service.Submit(ctx, owner, profilechange.SubmitChangeRequest{
			RequestedChanges: employee.ProfileChanges{LastName: strptr("Miller")},
		})
		assert.NoError(t, err)

		resp, err := deps.service.Deny(ctx, admin, submitted.ID, "needs documentation")
		assert.NoError(t, err)
		assert.Equal(t, profilechange.StatusDenied, resp.Status)

		empl, err := deps.employees.Get(ctx, "e-1")
		assert.NoError(t, err)
		assert.Equal(t, "Doe", empl.LastName)
	})

	t.Run("second decision conflicts", func(t *testing.T) {
		deps := setupChangeTest(t)

		submitted, err := deps.service.Submit(ctx, owner, profilechange.SubmitChangeRequest{
			RequestedChanges: employee.ProfileChanges{LastName: strptr("Miller")},
		})
		assert.NoError(t, err)

		_, err = deps.service.Deny(ctx, admin, submitted.ID, "")
		assert.NoError(t, err)

		_, err = deps.service.Approve(ctx, admin, submitted.ID, "")
		assert.ErrorIs(t, err, approval.ErrAlreadyDecided)

		empl, err := deps.employees.Get(ctx, "e-1")
		assert.NoError(t, err)
		assert.Equal(t, "Doe", empl.LastName)
	})
}
