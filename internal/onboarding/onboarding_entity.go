package onboarding

// Canonical forward order of onboarding steps. The order only feeds the
// progress percentage; the admin may jump to any step at any time.
const (
	StepPersonal  = "personal"
	StepAddress   = "address"
	StepStore     = "store"
	StepPayroll   = "payroll"
	StepDocuments = "documents"
	StepComplete  = "complete"
)

var StepOrder = []string{
	StepPersonal,
	StepAddress,
	StepStore,
	StepPayroll,
	StepDocuments,
	StepComplete,
}

// Block names that accept SaveBlock merges. documents is append-only and
// complete holds no data.
var blockNames = map[string]bool{
	StepPersonal: true,
	StepAddress:  true,
	StepStore:    true,
	StepPayroll:  true,
}

func IsBlock(name string) bool {
	return blockNames[name]
}

func IsStep(name string) bool {
	for _, s := range StepOrder {
		if s == name {
			return true
		}
	}
	return false
}

// Progress maps a step to its completion percentage, clamped to [0,100].
func Progress(step string) int {
	idx := 0
	for i, s := range StepOrder {
		if s == step {
			idx = i
			break
		}
	}
	pct := idx * 100 / (len(StepOrder) - 1)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// OnboardingRecord is the 1:1 dependent of an Employee tracking the
// multi-step checklist. Exactly one record exists per employee; the engine
// creates it lazily on first access.
type OnboardingRecord struct {
	ID         string         `json:"id"`
	EmployeeID string         `json:"employeeId"`
	Step       string         `json:"step"`
	Personal   map[string]any `json:"personal"`
	Address    map[string]any `json:"address"`
	Store      map[string]any `json:"store"`
	Payroll    map[string]any `json:"payroll"`
	Documents  []Document     `json:"documents"`
	CreatedAt  int64          `json:"createdAt"`
	UpdatedAt  int64          `json:"updatedAt"`
}

// Document is an entry in the append-only checklist log. Documents are
// never edited or removed.
type Document struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	Notes      string `json:"notes,omitempty"`
	UploadedAt int64  `json:"uploadedAt"`
}

func (r OnboardingRecord) block(name string) map[string]any {
	switch name {
	case StepPersonal:
		return r.Personal
	case StepAddress:
		return r.Address
	case StepStore:
		return r.Store
	case StepPayroll:
		return r.Payroll
	default:
		return nil
	}
}

func defaultRecord() OnboardingRecord {
	return OnboardingRecord{
		Step: StepPersonal,
		Personal: map[string]any{
			"dob":              "",
			"ssnLast4":         "",
			"emergencyContact": "",
		},
		Address: map[string]any{
			"line1": "",
			"line2": "",
			"city":  "",
			"state": "",
			"zip":   "",
		},
		Store: map[string]any{
			"storeId":   "",
			"storeName": "",
			"position":  "",
			"startDate": "",
		},
		Payroll: map[string]any{
			"payType":   "Hourly",
			"rate":      0,
			"taxStatus": "",
			"bankLast4": "",
		},
		Documents: []Document{},
	}
}
