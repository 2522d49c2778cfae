package dto

import (
	"time"

	"github.com/spec-kit/legal-office-service/internal/domain"
)

// LeaveApplicationResponse is the wire shape for a leave application.
type LeaveApplicationResponse struct {
	ID            string    `json:"id"`
	ApplicantID   *string   `json:"applicantId,omitempty"`
	ApplicantName string    `json:"applicantName"`
	LeaveType     string    `json:"leaveType"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Reason        string    `json:"reason,omitempty"`
	Status        string    `json:"status"`
	DecidedByID   *string   `json:"decidedById,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewLeaveApplicationResponses converts a slice.
func NewLeaveApplicationResponses(leaves []domain.LeaveApplication) []LeaveApplicationResponse {
	out := make([]LeaveApplicationResponse, 0, len(leaves))
	for i := range leaves {
		l := &leaves[i]
		out = append(out, LeaveApplicationResponse{
			ID:            l.ID,
			ApplicantID:   l.ApplicantID,
			ApplicantName: l.ApplicantName,
			LeaveType:     l.LeaveType,
			StartDate:     l.StartDate,
			EndDate:       l.EndDate,
			Reason:        l.Reason,
			Status:        string(l.Status),
			DecidedByID:   l.DecidedByID,
			CreatedAt:     l.CreatedAt,
			UpdatedAt:     l.UpdatedAt,
		})
	}
	return out
}
