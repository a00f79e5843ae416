package events

import "time"

const RequestLifecycleTopic = "leave.request.lifecycle.v1"

const (
	EventRequestSubmitted = "request_submitted"
	EventRequestDecided   = "request_decided"
)

type RequestSubmittedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id"`
	EmployeeCode string    `json:"employee_code"`
	Type         string    `json:"type"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	NextLevel    string    `json:"next_level,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// RequestDecidedEvent is emitted for every approval action: intermediate
// level sign-offs keep Status "pending", terminal ones carry the final
// status.
type RequestDecidedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id"`
	EmployeeCode string    `json:"employee_code"`
	Level        string    `json:"level"`
	Outcome      string    `json:"outcome"`
	Status       string    `json:"status"`
	NextLevel    string    `json:"next_level,omitempty"`
	ActorCode    string    `json:"actor_code"`
	OccurredAt   time.Time `json:"occurred_at"`
}
