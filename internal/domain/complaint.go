package domain

import "time"

// ComplaintStatus tracks a complaint through review.
type ComplaintStatus string

const (
	ComplaintOpen     ComplaintStatus = "open"
	ComplaintInReview ComplaintStatus = "in_review"
	ComplaintResolved ComplaintStatus = "resolved"
)

// Complaint is a filed case; the case number is unique office-wide.
type Complaint struct {
	ID          string
	CaseNumber  string
	Complainant string
	Respondent  string
	Subject     string
	Details     string
	Status      ComplaintStatus
	FiledByID   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ComplaintPatch carries updatable complaint fields; nil means untouched.
type ComplaintPatch struct {
	Complainant *string
	Respondent  *string
	Subject     *string
	Details     *string
	Status      *ComplaintStatus
}
