package domain

import "time"

// Category labels blog content; names are unique per owning account.
type Category struct {
	ID          string
	Name        string
	Description string
	OwnerID     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryPatch carries updatable category fields; nil means untouched.
type CategoryPatch struct {
	Name        *string
	Description *string
}
