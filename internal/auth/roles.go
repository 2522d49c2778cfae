package auth

import (
	"errors"

	"github.com/spec-kit/legal-office-service/internal/domain"
)

// ErrInvalidRole signals a role outside the enumerated set; callers surface
// it instead of redirecting.
var ErrInvalidRole = errors.New("invalid role")

var roleDestinations = map[domain.AccountRole]string{
	domain.RoleAdmin:          "/admin",
	domain.RoleDepartmentHead: "/department",
	domain.RoleManager:        "/manager",
	domain.RoleStaff:          "/staff",
}

// DestinationForRole maps an account role to its landing area.
func DestinationForRole(role domain.AccountRole) (string, error) {
	dest, ok := roleDestinations[role]
	if !ok {
		return "", ErrInvalidRole
	}
	return dest, nil
}
