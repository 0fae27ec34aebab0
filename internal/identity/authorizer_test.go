package identity_test

import (
	"testing"

	"hr-portal/internal/identity"
	"hr-portal/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizer_Can(t *testing.T) {
	authz, err := identity.NewAuthorizer()
	assert.NoError(t, err)

	admin := identity.Principal{ID: "a-1", Role: identity.RoleAdmin}
	empl := identity.Principal{ID: "e-1", Role: identity.RoleEmployee}

	t.Run("admin decides requests", func(t *testing.T) {
		assert.NoError(t, authz.Can(admin, identity.ResourceLeave, identity.ActionDecide))
		assert.NoError(t, authz.Can(admin, identity.ResourceProfileChange, identity.ActionDecide))
	})

	t.Run("employee cannot decide", func(t *testing.T) {
		err := authz.Can(empl, identity.ResourceLeave, identity.ActionDecide)
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("employee submits own requests", func(t *testing.T) {
		assert.NoError(t, authz.Can(empl, identity.ResourceLeave, identity.ActionSubmit))
		assert.NoError(t, authz.Can(empl, identity.ResourceProfileChange, identity.ActionSubmit))
	})

	t.Run("only admin manages onboarding", func(t *testing.T) {
		assert.NoError(t, authz.Can(admin, identity.ResourceOnboarding, identity.ActionManage))
		assert.ErrorIs(t, authz.Can(empl, identity.ResourceOnboarding, identity.ActionManage), apperror.ErrForbidden)
	})

	t.Run("unknown role has no grants", func(t *testing.T) {
		ghost := identity.Principal{ID: "x-1", Role: "contractor"}
		assert.ErrorIs(t, authz.Can(ghost, identity.ResourceEmployee, identity.ActionRead), apperror.ErrForbidden)
	})
}

func TestAuthorizer_Permissions(t *testing.T) {
	authz, err := identity.NewAuthorizer()
	assert.NoError(t, err)

	t.Run("employee permission list", func(t *testing.T) {
		perms := authz.Permissions(identity.RoleEmployee)
		assert.Contains(t, perms, "leave:submit")
		assert.Contains(t, perms, "paystub:read_own")
		assert.NotContains(t, perms, "leave:decide")
	})

	t.Run("sorted output", func(t *testing.T) {
		perms := authz.Permissions(identity.RoleAdmin)
		assert.IsIncreasing(t, perms)
	})

	t.Run("unknown role is empty", func(t *testing.T) {
		assert.Empty(t, authz.Permissions("contractor"))
	})
}

func TestRequireSelfOrAdmin(t *testing.T) {
	admin := identity.Principal{ID: "a-1", Role: identity.RoleAdmin}
	owner := identity.Principal{ID: "e-1", Role: identity.RoleEmployee}
	other := identity.Principal{ID: "e-2", Role: identity.RoleEmployee}

	assert.NoError(t, identity.RequireSelfOrAdmin(admin, "e-1"))
	assert.NoError(t, identity.RequireSelfOrAdmin(owner, "e-1"))
	assert.ErrorIs(t, identity.RequireSelfOrAdmin(other, "e-1"), apperror.ErrForbidden)

	t.Run("empty principal id never owns", func(t *testing.T) {
		anon := identity.Principal{Role: identity.RoleEmployee}
		assert.ErrorIs(t, identity.RequireSelfOrAdmin(anon, ""), apperror.ErrForbidden)
	})
}
