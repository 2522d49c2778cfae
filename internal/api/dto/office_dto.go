package dto

import (
	"time"

	"github.com/spec-kit/legal-office-service/internal/domain"
)

// DepartmentResponse is the wire shape for a department.
type DepartmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	HeadName    string    `json:"headName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewDepartmentResponses converts a slice.
func NewDepartmentResponses(departments []domain.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(departments))
	for i := range departments {
		d := &departments[i]
		out = append(out, DepartmentResponse{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			HeadName:    d.HeadName,
			CreatedAt:   d.CreatedAt,
			UpdatedAt:   d.UpdatedAt,
		})
	}
	return out
}

// MemoResponse is the wire shape for a memo.
type MemoResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Recipient string    `json:"recipient"`
	AuthorID  *string   `json:"authorId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewMemoResponses converts a slice.
func NewMemoResponses(memos []domain.Memo) []MemoResponse {
	out := make([]MemoResponse, 0, len(memos))
	for i := range memos {
		m := &memos[i]
		out = append(out, MemoResponse{
			ID:        m.ID,
			Title:     m.Title,
			Body:      m.Body,
			Recipient: m.Recipient,
			AuthorID:  m.AuthorID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		})
	}
	return out
}

// MonthlyReportResponse is the wire shape for a monthly report.
type MonthlyReportResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary,omitempty"`
	DepartmentID  string    `json:"departmentId"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	SubmittedByID *string   `json:"submittedById,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewMonthlyReportResponses converts a slice.
func NewMonthlyReportResponses(reports []domain.MonthlyReport) []MonthlyReportResponse {
	out := make([]MonthlyReportResponse, 0, len(reports))
	for i := range reports {
		r := &reports[i]
		out = append(out, MonthlyReportResponse{
			ID:            r.ID,
			Title:         r.Title,
			Summary:       r.Summary,
			DepartmentID:  r.DepartmentID,
			Month:         r.Month,
			Year:          r.Year,
			SubmittedByID: r.SubmittedByID,
			CreatedAt:     r.CreatedAt,
			UpdatedAt:     r.UpdatedAt,
		})
	}
	return out
}
