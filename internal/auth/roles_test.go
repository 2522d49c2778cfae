package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/legal-office-service/internal/domain"
)

func TestDestinationForRole(t *testing.T) {
	tests := []struct {
		role domain.AccountRole
		want string
	}{
		{domain.RoleAdmin, "/admin"},
		{domain.RoleDepartmentHead, "/department"},
		{domain.RoleManager, "/manager"},
		{domain.RoleStaff, "/staff"},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			dest, err := DestinationForRole(tt.role)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, dest)
		})
	}
}

func TestDestinationForRoleRejectsUnknown(t *testing.T) {
	dest, err := DestinationForRole(domain.AccountRole("intern"))
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Empty(t, dest)
}
