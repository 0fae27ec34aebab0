package profilechange

import "hr-portal/internal/employee"

type SubmitChangeRequest struct {
	RequestedChanges employee.ProfileChanges `json:"requestedChanges" binding:"required"`
}

type DecideChangeRequest struct {
	DecisionNote string `json:"decisionNote"`
}

type ChangeRequestResponse struct {
	ID               string                  `json:"id"`
	EmployeeID       string                  `json:"employeeId"`
	EmployeeName     string                  `json:"employeeName"`
	EmployeeEmail    string                  `json:"employeeEmail"`
	RequestedChanges employee.ProfileChanges `json:"requestedChanges"`
	Status           string                  `json:"status"`
	DecisionNote     string                  `json:"decisionNote"`
	ReviewedBy       string                  `json:"reviewedBy,omitempty"`
	ReviewedAt       int64                   `json:"reviewedAt,omitempty"`
	CreatedAt        int64                   `json:"createdAt"`
}
