package identity

import (
	"fmt"
	"sort"

	"hr-portal/internal/shared/apperror"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Resources and actions the portal gates. Action visibility in the UI and
// hard enforcement in the services both derive from the same policy.
const (
	ResourceEmployee      = "employee"
	ResourceProfileChange = "profile_change"
	ResourceLeave         = "leave"
	ResourceOnboarding    = "onboarding"
	ResourcePaystub       = "paystub"

	ActionCreate  = "create"
	ActionRead    = "read"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionSubmit  = "submit"
	ActionDecide  = "decide"
	ActionReadAll = "read_all"
	ActionReadOwn = "read_own"
	ActionManage  = "manage"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// rolePolicies is the static permission table. Subjects are roles; ownership
// (self-or-admin) is enforced separately because it depends on the record,
// not the role.
var rolePolicies = [][]string{
	{RoleAdmin, ResourceEmployee, ActionCreate},
	{RoleAdmin, ResourceEmployee, ActionRead},
	{RoleAdmin, ResourceEmployee, ActionUpdate},
	{RoleAdmin, ResourceEmployee, ActionDelete},
	{RoleAdmin, ResourceProfileChange, ActionDecide},
	{RoleAdmin, ResourceProfileChange, ActionReadAll},
	{RoleAdmin, ResourceLeave, ActionDecide},
	{RoleAdmin, ResourceLeave, ActionReadAll},
	{RoleAdmin, ResourceOnboarding, ActionManage},
	{RoleAdmin, ResourcePaystub, ActionCreate},
	{RoleAdmin, ResourcePaystub, ActionReadAll},

	{RoleEmployee, ResourceEmployee, ActionRead},
	{RoleEmployee, ResourceProfileChange, ActionSubmit},
	{RoleEmployee, ResourceProfileChange, ActionReadOwn},
	{RoleEmployee, ResourceLeave, ActionSubmit},
	{RoleEmployee, ResourceLeave, ActionReadOwn},
	{RoleEmployee, ResourcePaystub, ActionReadOwn},
}

//go:generate mockgen -source=authorizer.go -destination=mock/authorizer_mock.go -package=mock
type Authorizer interface {
	// Can allows the operation when the principal's role grants it,
	// otherwise returns a Forbidden error.
	Can(p Principal, resource, action string) error
	// Permissions lists "resource:action" pairs granted to a role, for
	// sidebar/action visibility.
	Permissions(role string) []string
}

type authorizer struct {
	enforcer *casbin.Enforcer
}

func NewAuthorizer() (Authorizer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	if _, err := e.AddPolicies(rolePolicies); err != nil {
		return nil, err
	}
	return &authorizer{enforcer: e}, nil
}

func (a *authorizer) Can(p Principal, resource, action string) error {
	allowed, err := a.enforcer.Enforce(p.Role, resource, action)
	if err != nil {
		return err
	}
	if !allowed {
		return apperror.ErrForbidden
	}
	return nil
}

func (a *authorizer) Permissions(role string) []string {
	perms, err := a.enforcer.GetPermissionsForUser(role)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(perms))
	for _, perm := range perms {
		if len(perm) < 3 {
			continue
		}
		out = append(out, fmt.Sprintf("%s:%s", perm[1], perm[2]))
	}
	sort.Strings(out)
	return out
}

// RequireSelfOrAdmin allows admins and the owning principal through;
// everyone else gets a Forbidden error. Ownership compares principal id to
// the record's employeeId.
func RequireSelfOrAdmin(p Principal, ownerID string) error {
	if p.IsAdmin() {
		return nil
	}
	if p.ID != "" && p.ID == ownerID {
		return nil
	}
	return apperror.ErrForbidden
}
