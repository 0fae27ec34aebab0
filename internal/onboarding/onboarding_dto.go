package onboarding

type SaveBlockRequest struct {
	Data map[string]any `json:"data" binding:"required"`
}

type AdvanceRequest struct {
	Step string `json:"step" binding:"required"`
}

type AddDocumentRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Notes string `json:"notes"`
}

type OnboardingResponse struct {
	ID         string         `json:"id"`
	EmployeeID string         `json:"employeeId"`
	Step       string         `json:"step"`
	Progress   int            `json:"progress"`
	Personal   map[string]any `json:"personal"`
	Address    map[string]any `json:"address"`
	Store      map[string]any `json:"store"`
	Payroll    map[string]any `json:"payroll"`
	Documents  []Document     `json:"documents"`
	CreatedAt  int64          `json:"createdAt"`
	UpdatedAt  int64          `json:"updatedAt"`
}
