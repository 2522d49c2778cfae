package dto

import (
	"time"

	"github.com/spec-kit/legal-office-service/internal/domain"
)

// AccountResponse is the wire shape for an account; the password hash never
// leaves the service.
type AccountResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	DepartmentID *string   `json:"departmentId,omitempty"`
	Position     string    `json:"position,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewAccountResponse converts the domain model.
func NewAccountResponse(account *domain.Account) *AccountResponse {
	if account == nil {
		return nil
	}
	return &AccountResponse{
		ID:           account.ID,
		Name:         account.Name,
		Email:        account.Email,
		Phone:        account.Phone,
		Role:         string(account.Role),
		DepartmentID: account.DepartmentID,
		Position:     account.Position,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}

// NewAccountResponses converts a slice.
func NewAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, *NewAccountResponse(&accounts[i]))
	}
	return out
}
