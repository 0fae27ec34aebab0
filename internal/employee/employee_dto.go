package employee

type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role" binding:"omitempty,oneof=employee admin"`
	Department string `json:"department"`
	Title      string `json:"title"`
	Status     string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

type UpdateEmployeeRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty" binding:"omitempty,email"`
	Department *string `json:"department,omitempty"`
	Title      *string `json:"title,omitempty"`
	Status     *string `json:"status,omitempty" binding:"omitempty,oneof=Active Inactive"`
}

// EmployeeResponse never carries the password field.
type EmployeeResponse struct {
	ID             string          `json:"id"`
	Role           string          `json:"role"`
	Name           string          `json:"name"`
	FirstName      string          `json:"firstName,omitempty"`
	LastName       string          `json:"lastName,omitempty"`
	Email          string          `json:"email"`
	Department     string          `json:"department,omitempty"`
	Title          string          `json:"title,omitempty"`
	Status         string          `json:"status,omitempty"`
	Gender         string          `json:"gender,omitempty"`
	DateOfBirth    string          `json:"dateOfBirth,omitempty"`
	MaritalStatus  string          `json:"maritalStatus,omitempty"`
	Nationality    string          `json:"nationality,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Address        *Address        `json:"address,omitempty"`
	ContactDetails *ContactDetails `json:"contactDetails,omitempty"`
	OnboardingID   string          `json:"onboardingId,omitempty"`
}
