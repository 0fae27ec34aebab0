package paystub

// Paystub is an admin-issued payroll record. Net is always recomputed
// server-side from gross, tax and deductions.
type Paystub struct {
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

type Deduction struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}
