package events

import (
	"time"

	"github.com/spec-kit/legal-office-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventContactReceived EventType = "contact_received"
	EventComplaintFiled  EventType = "complaint_filed"
	EventLeaveDecided    EventType = "leave_decided"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	SubjectID  string      `json:"subject_id"`
	ActorEmail string      `json:"actor_email,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// ContactReceivedPayload payload.
type ContactReceivedPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
}

// ComplaintFiledPayload payload.
type ComplaintFiledPayload struct {
	CaseNumber  string `json:"case_number"`
	Complainant string `json:"complainant"`
	Subject     string `json:"subject"`
}

// LeaveDecidedPayload payload.
type LeaveDecidedPayload struct {
	ApplicantName string             `json:"applicant_name"`
	LeaveType     string             `json:"leave_type"`
	Status        domain.LeaveStatus `json:"status"`
}
