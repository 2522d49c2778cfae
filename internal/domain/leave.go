package domain

import "time"

// LeaveStatus tracks a leave application decision.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// LeaveApplication is a staff request for time off.
type LeaveApplication struct {
	ID            string
	ApplicantID   *string
	ApplicantName string
	LeaveType     string
	StartDate     time.Time
	EndDate       time.Time
	Reason        string
	Status        LeaveStatus
	DecidedByID   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LeaveApplicationPatch carries updatable leave fields; nil means untouched.
type LeaveApplicationPatch struct {
	LeaveType *string
	StartDate *time.Time
	EndDate   *time.Time
	Reason    *string
	Status    *LeaveStatus
}
