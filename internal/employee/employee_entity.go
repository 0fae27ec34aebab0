package employee

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Employee is the root record of the portal. The JSON field names are the
// store's document schema; every other entity references employees by id.
type Employee struct {
	ID            string          `json:"id"`
	Role          string          `json:"role"`
	Name          string          `json:"name"`
	FirstName     string          `json:"firstName,omitempty"`
	LastName      string          `json:"lastName,omitempty"`
	Email         string          `json:"email"`
	Password      string          `json:"password,omitempty"`
	Department    string          `json:"department,omitempty"`
	Title         string          `json:"title,omitempty"`
	Status        string          `json:"status,omitempty"`
	Gender        string          `json:"gender,omitempty"`
	DateOfBirth   string          `json:"dateOfBirth,omitempty"`
	MaritalStatus string          `json:"maritalStatus,omitempty"`
	Nationality   string          `json:"nationality,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Address       *Address        `json:"address,omitempty"`
	ContactDetails *ContactDetails `json:"contactDetails,omitempty"`
	// OnboardingID is a non-owning back-reference; cascade deletion goes
	// through an employeeId filter, never through this field.
	OnboardingID string `json:"onboardingId,omitempty"`
}

type Address struct {
	Line1 string `json:"line1,omitempty"`
	Line2 string `json:"line2,omitempty"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
	Zip   string `json:"zip,omitempty"`
}

type ContactDetails struct {
	PersonalEmail    string            `json:"personalEmail,omitempty"`
	MobileNumber     string            `json:"mobileNumber,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
}

type EmergencyContact struct {
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// ProfileChanges is the employee-shaped partial payload carried by a
// profile-change request. Nil fields are untouched on merge; a set Address
// or ContactDetails replaces the stored object wholesale.
type ProfileChanges struct {
	FirstName      *string         `json:"firstName,omitempty"`
	LastName       *string         `json:"lastName,omitempty"`
	Gender         *string         `json:"gender,omitempty"`
	DateOfBirth    *string         `json:"dateOfBirth,omitempty"`
	MaritalStatus  *string         `json:"maritalStatus,omitempty"`
	Nationality    *string         `json:"nationality,omitempty"`
	Phone          *string         `json:"phone,omitempty"`
	Address        *Address        `json:"address,omitempty"`
	ContactDetails *ContactDetails `json:"contactDetails,omitempty"`
}

func (c ProfileChanges) IsEmpty() bool {
	return c.FirstName == nil &&
		c.LastName == nil &&
		c.Gender == nil &&
		c.DateOfBirth == nil &&
		c.MaritalStatus == nil &&
		c.Nationality == nil &&
		c.Phone == nil &&
		c.Address == nil &&
		c.ContactDetails == nil
}
