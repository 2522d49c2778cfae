package domain

import "time"

// ContactMessage is a website contact-form submission.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// ContactMessagePatch carries updatable contact fields; nil means untouched.
type ContactMessagePatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Subject *string
	Message *string
}
