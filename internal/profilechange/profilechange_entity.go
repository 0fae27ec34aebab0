package profilechange

import (
	"hr-portal/internal/approval"
	"hr-portal/internal/employee"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

var Vocab = approval.Vocabulary{
	Pending:  StatusPending,
	Approved: StatusApproved,
	Denied:   StatusDenied,
}

// ProfileChangeRequest carries a partial employee payload awaiting admin
// review. EmployeeName and EmployeeEmail are snapshots frozen at submission
// time so historical requests keep showing what the submitter looked like
// back then, even after the employee record changes.
type ProfileChangeRequest struct {
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
