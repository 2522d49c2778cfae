package domain

import "time"

// Department is an organizational unit; names are unique per owning account.
type Department struct {
	ID          string
	Name        string
	Description string
	OwnerID     *string
	HeadName    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DepartmentPatch carries updatable department fields; nil means untouched.
type DepartmentPatch struct {
	Name        *string
	Description *string
	HeadName    *string
}
