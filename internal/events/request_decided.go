package events

import "time"

const RequestDecidedTopic = "hr.request.decision.v1"

// RequestDecidedEvent is emitted after an approval engine transition commits.
type RequestDecidedEvent struct {
	EventType   string    `json:"event_type"`
	RequestKind string    `json:"request_kind"` // leave | profile_change
	RequestID   string    `json:"request_id"`
	EmployeeID  string    `json:"employee_id"`
	Status      string    `json:"status"`
	ReviewedBy  string    `json:"reviewed_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
