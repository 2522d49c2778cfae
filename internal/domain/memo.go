package domain

import "time"

// Memo is an internal note addressed to a department.
type Memo struct {
	ID        string
	Title     string
	Body      string
	Recipient string
	AuthorID  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemoPatch carries updatable memo fields; nil means untouched.
type MemoPatch struct {
	Title     *string
	Body      *string
	Recipient *string
}
