package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/events"
	"github.com/spec-kit/legal-office-service/internal/repository"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

// ContactService manages website contact-form intake.
type ContactService struct {
	contacts   repository.ContactRepository
	dispatcher events.Dispatcher
	pageSize   int
}

// NewContactService builds the service.
func NewContactService(contacts repository.ContactRepository, dispatcher events.Dispatcher, pageSize int) *ContactService {
	return &ContactService{contacts: contacts, dispatcher: dispatcher, pageSize: pageSize}
}

// ContactCreateInput describes an inbound contact message.
type ContactCreateInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ContactList is one page of contact messages.
type ContactList struct {
	Items       []domain.ContactMessage
	TotalPages  int
	CurrentPage int
}

// List returns one page of contact messages matching the search term.
func (s *ContactService) List(ctx context.Context, page int, term string) (*ContactList, error) {
	if page < 1 {
		page = 1
	}
	items, total, err := s.contacts.List(ctx, term, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, err
	}
	return &ContactList{
		Items:       items,
		TotalPages:  repository.TotalPages(total, s.pageSize),
		CurrentPage: page,
	}, nil
}

// Create stores the submission and notifies the office.
func (s *ContactService) Create(ctx context.Context, input ContactCreateInput) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := s.contacts.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventContactReceived,
			SubjectID: msg.ID,
			Timestamp: time.Now(),
			Payload: events.ContactReceivedPayload{
				Name:    msg.Name,
				Email:   msg.Email,
				Subject: msg.Subject,
			},
		})
	}
	return msg, nil
}

// Update merges the provided fields into an existing contact message.
func (s *ContactService) Update(ctx context.Context, id string, patch domain.ContactMessagePatch) error {
	if err := s.contacts.Update(ctx, id, patch); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Contact")
		}
		return err
	}
	return nil
}

// Delete removes a contact message.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Contact")
		}
		return err
	}
	return nil
}
