package onboarding_test

import (
	"context"
	"strings"
	"testing"

	"hr-portal/internal/employee"
	"hr-portal/internal/identity"
	"hr-portal/internal/onboarding"
	onboardingerrors "hr-portal/internal/onboarding/errors"
	"hr-portal/internal/shared/apperror"
	"hr-portal/internal/store/memstore"

	"github.com/stretchr/testify/assert"
)

var (
	admin = identity.Principal{ID: "a-1", Role: identity.RoleAdmin}
	empl  = identity.Principal{ID: "e-1", Role: identity.RoleEmployee}
)

type onboardingDeps struct {
	service   onboarding.Service
	employees employee.Repository
}

func setupOnboardingTest(t *testing.T) *onboardingDeps {
	t.Helper()

	authz, err := identity.NewAuthorizer()
	assert.NoError(t, err)

	client := memstore.New()
	employees := employee.NewRepository(client)
	assert.NoError(t, employees.Create(context.Background(), employee.Employee{
		ID: "e-1", Role: identity.RoleEmployee, Name: "Jane Doe", Email: "jane@example.com",
	}))

	svc := onboarding.NewService(client, authz, employees)
	return &onboardingDeps{service: svc, employees: employees}
}

func TestOnboardingService_EnsureRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("first access creates a defaulted record", func(t *testing.T) {
		deps := setupOnboardingTest(t)

		resp, err := deps.service.EnsureRecord(ctx, admin, "e-1")

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(resp.ID, "ob-"))
		assert.Equal(t, "e-1", resp.EmployeeID)
		assert.Equal(t, onboarding.StepPersonal, resp.Step)
		assert.Equal(t, 0, resp.Progress)
		assert.Equal(t, "Hourly", resp.Payroll["payType"])
		assert.Empty(t, resp.Documents)
	})

	t.Run("links the record back onto the employee", func(t *testing.T) {
		deps := setupOnboardingTest(t)

		resp, err := deps.service.EnsureRecord(ctx, admin, "e-1")
		assert.NoError(t, err)

		e, err := deps.employees.Get(ctx, "e-1")
		assert.NoError(t, err)
		assert.Equal(t, resp.ID, e.OnboardingID)
	})

	t.Run("repeated calls return the same record", func(t *testing.T) {
		deps := setupOnboardingTest(t)

		first, err := deps.service.EnsureRecord(ctx, admin, "e-1")
		assert.NoError(t, err)
		second, err := deps.service.EnsureRecord(ctx, admin, "e-1")
		assert.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("repairs a stale backref", func(t *testing.T) {
		deps := setupOnboardingTest(t)

		first, err := deps.service.EnsureRecord(ctx, admin, "e-1")
		assert.NoError(t, err)

		_, err = deps.employees.Patch(ctx, "e-1", map[string]any{"onboardingId": ""})
		assert.NoError(t, err)

		_, err = deps.service.EnsureRecord(ctx, admin, "e-1")
		assert.NoError(t, err)

		e, err := deps.employees.Get(ctx, "e-1")
		assert.NoError(t, err)
		assert.Equal(t, first.ID, e.OnboardingID)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupOnboardingTest(t)

		_, err := deps.service.EnsureRecord(ctx, admin, "e-404")
		assert.ErrorIs(t, err, onboardingerrors.ErrEmployeeNotFound)
	})

	t.Run("employees cannot manage onboarding", func(t *testing.T) {
		deps := setupOnboardingTest(t)

		_, err := deps.service.EnsureRecord(ctx, empl, "e-1")
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestOnboardingService_SaveBlock(t *testing.T) {
	ctx := context.Background()

	t.Run("merges into existing block data", func(t *testing.T) {
		deps := setupOnboardingTest(t)
		rec, err := deps.service.EnsureRecord(ctx, admin, "e-1")
		assert.NoError(t, err)

		_, err = deps.service.SaveBlock(ctx, admin, rec.ID, onboarding.StepAddress, onboarding.SaveBlockRequest{
			Data: map[string]any{"city": "Austin", "state": "TX"},
		})
		assert.NoError(t, err)

		updated, err := deps.service.SaveBlock(ctx, admin, rec.ID, onboarding.StepAddress, onboarding.SaveBlockRequest{
			Data: map[string]any{"city": "Dallas"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "Dallas", updated.Address["city"])
		assert.Equal(t, "TX", updated.Address["state"])
	})

	t.Run("other blocks untouched", func(t *testing.T) {
		deps := setupOnboardingTest(t)
		rec, err := deps.service.EnsureRecord(ctx, admin, "e-1")
		assert.NoError(t, err)

		updated, err := deps.service.SaveBlock(ctx, admin, rec.ID, onboarding.StepPersonal, onboarding.SaveBlockRequest{
			Data: map[string]any{"dob": "1990-02-14"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "Hourly", updated.Payroll["payType"])
	})

	t.Run("unknown block", func(t *testing.T) {
		deps := setupOnboardingTest(t)
		rec, err := deps.service.EnsureRecord(ctx, admin, "e-1")
		assert.NoError(t, err)

		_, err = deps.service.SaveBlock(ctx, admin, rec.ID, "benefits", onboarding.SaveBlockRequest{
			Data: map[string]any{"plan": "gold"},
		})
		assert.ErrorIs(t, err, onboardingerrors.ErrUnknownBlock)
	})

	t.Run("documents is not a writable block", func(t *testing.T) {
		deps := setupOnboardingTest(t)
		rec, err := deps.service.EnsureRecord(ctx, admin, "e-1")
		assert.NoError(t, err)

		_, err = deps.service.SaveBlock(ctx, admin, rec.ID, onboarding.StepDocuments, onboarding.SaveBlockRequest{
			Data: map[string]any{"x": 1},
		})
		assert.ErrorIs(t, err, onboardingerrors.ErrUnknownBlock)
	})
}

func TestOnboardingService_Advance(t *testing.T) {
	ctx := context.Background()

	t.Run("moves to any step and reports progress", func(t *testing.T) {
		deps := setupOnboardingTest(t)
		rec, err := deps.service.EnsureRecord(ctx, admin, "e-1")
		assert.NoError(t, err)

		updated, err := deps.service.Advance(ctx, admin, rec.ID, onboarding.AdvanceRequest{Step: onboarding.StepPayroll})
		assert.NoError(t, err)
		assert.Equal(t, onboarding.StepPayroll, updated.Step)
		assert.Equal(t, 60, updated.Progress)

		// Backward moves are allowed.
		back, err := deps.service.Advance(ctx, admin, rec.ID, onboarding.AdvanceRequest{Step: onboarding.StepAddress})
		assert.NoError(t, err)
		assert.Equal(t, 20, back.Progress)

		done, err := deps.service.Advance(ctx, admin, rec.ID, onboarding.AdvanceRequest{Step: onboarding.StepComplete})
		assert.NoError(t, err)
		assert.Equal(t, 100, done.Progress)
	})

	t.Run("unknown step", func(t *testing.T) {
		deps := setupOnboardingTest(t)
		rec, err := deps.service.EnsureRecord(ctx, admin, "e-1")
		assert.NoError(t, err)

		_, err = deps.service.Advance(ctx, admin, rec.ID, onboarding.AdvanceRequest{Step: "orientation"})
		assert.ErrorIs(t, err, onboardingerrors.ErrUnknownStep)
	})
}

func TestOnboardingService_AddDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("appends to the log", func(t *testing.T) {
		deps := setupOnboardingTest(t)
		rec, err := deps.service.EnsureRecord(ctx, admin, "e-1")
		assert.NoError(t, err)

		updated, err := deps.service.AddDocument(ctx, admin, rec.ID, onboarding.AddDocumentRequest{
			Name: "W-4", Type: "tax",
		})
		assert.NoError(t, err)
		assert.Len(t, updated.Documents, 1)
		assert.True(t, strings.HasPrefix(updated.Documents[0].ID, "doc-"))
		assert.Equal(t, "W-4", updated.Documents[0].Name)
		assert.NotZero(t, updated.Documents[0].UploadedAt)

		again, err := deps.service.AddDocument(ctx, admin, rec.ID, onboarding.AddDocumentRequest{Name: "I-9"})
		assert.NoError(t, err)
		assert.Len(t, again.Documents, 2)
	})

	t.Run("blank name leaves the log unchanged", func(t *testing.T) {
		deps := setupOnboardingTest(t)
		rec, err := deps.service.EnsureRecord(ctx, admin, "e-1")
		assert.NoError(t, err)

		_, err = deps.service.AddDocument(ctx, admin, rec.ID, onboarding.AddDocumentRequest{Name: "   "})
		assert.ErrorIs(t, err, onboardingerrors.ErrDocumentNameRequired)

		current, err := deps.service.EnsureRecord(ctx, admin, "e-1")
		assert.NoError(t, err)
		assert.Empty(t, current.Documents)
	})
}

func TestOnboardingService_DeleteByEmployee(t *testing.T) {
	ctx := context.Background()
	deps := setupOnboardingTest(t)

	first, err := deps.service.EnsureRecord(ctx, admin, "e-1")
	assert.NoError(t, err)

	assert.NoError(t, deps.service.DeleteByEmployee(ctx, "e-1"))

	// The next access recreates a fresh record.
	second, err := deps.service.EnsureRecord(ctx, admin, "e-1")
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	t.Run("no records is not an error", func(t *testing.T) {
		assert.NoError(t, deps.service.DeleteByEmployee(ctx, "e-404"))
	})
}
