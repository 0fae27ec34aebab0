package paystub

type CreatePaystubRequest struct {
	EmployeeID  string      `json:"employeeId" binding:"required"`
	PeriodStart string      `json:"periodStart" binding:"required"`
	PeriodEnd   string      `json:"periodEnd" binding:"required"`
	PayDate     string      `json:"payDate" binding:"required"`
	Gross       float64     `json:"gross" binding:"min=0"`
	Tax         float64     `json:"tax" binding:"min=0"`
	Deductions  []Deduction `json:"deductions"`
}

type PaystubResponse struct {
	ID         string      `json:"id"`
	EmployeeID string      `json:"employeeId"`
	Period     string      `json:"period"`
	PayDate    string      `json:"payDate"`
	Gross      float64     `json:"gross"`
	Tax        float64     `json:"tax"`
	Net        float64     `json:"net"`
	Deductions []Deduction `json:"deductions"`
	CreatedAt  int64       `json:"createdAt"`
}
