package domain

import "time"

// MonthlyReport summarizes a department's month; one per department and month.
type MonthlyReport struct {
	ID            string
	Title         string
	Summary       string
	DepartmentID  string
	Month         int
	Year          int
	SubmittedByID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MonthlyReportPatch carries updatable report fields; nil means untouched.
type MonthlyReportPatch struct {
	Title   *string
	Summary *string
}
