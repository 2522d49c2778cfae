package dto

import (
	"time"

	"github.com/spec-kit/legal-office-service/internal/domain"
)

// ContactMessageResponse is the wire shape for a contact-form submission.
type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewContactMessageResponses converts a slice.
func NewContactMessageResponses(messages []domain.ContactMessage) []ContactMessageResponse {
	out := make([]ContactMessageResponse, 0, len(messages))
	for i := range messages {
		m := &messages[i]
		out = append(out, ContactMessageResponse{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Phone:     m.Phone,
			Subject:   m.Subject,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}

// ComplaintResponse is the wire shape for a complaint.
type ComplaintResponse struct {
	ID          string    `json:"id"`
	CaseNumber  string    `json:"caseNumber"`
	Complainant string    `json:"complainant"`
	Respondent  string    `json:"respondent,omitempty"`
	Subject     string    `json:"subject"`
	Details     string    `json:"details,omitempty"`
	Status      string    `json:"status"`
	FiledByID   *string   `json:"filedById,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewComplaintResponses converts a slice.
func NewComplaintResponses(complaints []domain.Complaint) []ComplaintResponse {
	out := make([]ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		cp := &complaints[i]
		out = append(out, ComplaintResponse{
			ID:          cp.ID,
			CaseNumber:  cp.CaseNumber,
			Complainant: cp.Complainant,
			Respondent:  cp.Respondent,
			Subject:     cp.Subject,
			Details:     cp.Details,
			Status:      string(cp.Status),
			FiledByID:   cp.FiledByID,
			CreatedAt:   cp.CreatedAt,
			UpdatedAt:   cp.UpdatedAt,
		})
	}
	return out
}
