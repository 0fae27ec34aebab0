package leave

type SubmitLeaveRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type DecideLeaveRequest struct {
	DecisionNote string `json:"decisionNote"`
}

type LeaveResponse struct {
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
