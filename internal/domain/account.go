package domain

import "time"

// AccountRole enumerates back-office roles.
type AccountRole string

const (
	RoleAdmin          AccountRole = "admin"
	RoleDepartmentHead AccountRole = "department_head"
	RoleManager        AccountRole = "manager"
	RoleStaff          AccountRole = "staff"
)

// ValidRole reports whether the role is one of the enumerated values.
func ValidRole(role AccountRole) bool {
	switch role {
	case RoleAdmin, RoleDepartmentHead, RoleManager, RoleStaff:
		return true
	}
	return false
}

// Account is the identity record behind every session.
type Account struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         AccountRole
	DepartmentID *string
	Position     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountPatch carries the fields an update may merge; nil means untouched.
type AccountPatch struct {
	Name         *string
	Email        *string
	Phone        *string
	PasswordHash *string
	Role         *AccountRole
	DepartmentID *string
	Position     *string
}
