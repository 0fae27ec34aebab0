package leave

import "hr-portal/internal/approval"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusDenied   = "Denied"
)

// Vocab feeds the shared approval engine with this entity's status wording.
var Vocab = approval.Vocabulary{
	Pending:  StatusPending,
	Approved: StatusApproved,
	Denied:   StatusDenied,
}

// LeaveRequest is an append-mostly log entry referencing an employee.
// EmployeeName is a denormalized snapshot taken at submission time and is
// intentionally never re-resolved: historical requests show the data as it
// was when submitted.
type LeaveRequest struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	DecisionNote string `json:"decisionNote"`
	ReviewedBy   string `json:"reviewedBy,omitempty"`
	ReviewedAt   int64  `json:"reviewedAt,omitempty"`
	CreatedAt    int64  `json:"createdAt"`
}
