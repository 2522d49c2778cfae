package domain

import "time"

// BlogPost is a published article on the office website.
type BlogPost struct {
	ID         string
	Title      string
	Summary    string
	Body       string
	AuthorID   *string
	AuthorName string
	CategoryID *string
	ImageURL   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BlogPostPatch carries updatable blog fields; nil means untouched.
type BlogPostPatch struct {
	Title      *string
	Summary    *string
	Body       *string
	CategoryID *string
	ImageURL   *string
}
