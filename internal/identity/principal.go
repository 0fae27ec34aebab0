package identity

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Principal is the identity on whose behalf an operation runs. It is passed
// explicitly into every engine call; nothing in the core reads it from
// ambient state. Role comes from the employee record, never from the id
// prefix convention.
type Principal struct {
	ID    string
	Role  string
	Name  string
	Email string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
