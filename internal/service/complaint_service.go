package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/events"
	"github.com/spec-kit/legal-office-service/internal/repository"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

// ComplaintService manages filed complaints.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	dispatcher events.Dispatcher
	pageSize   int
}

// NewComplaintService builds the service.
func NewComplaintService(complaints repository.ComplaintRepository, dispatcher events.Dispatcher, pageSize int) *ComplaintService {
	return &ComplaintService{complaints: complaints, dispatcher: dispatcher, pageSize: pageSize}
}

// ComplaintCreateInput describes a new complaint; a blank case number is
// generated server-side.
type ComplaintCreateInput struct {
	CaseNumber  string
	Complainant string
	Respondent  string
	Subject     string
	Details     string
}

// ComplaintList is one page of complaints.
type ComplaintList struct {
	Items       []domain.Complaint
	TotalPages  int
	CurrentPage int
}

// List returns one page of complaints matching the search term.
func (s *ComplaintService) List(ctx context.Context, page int, term string) (*ComplaintList, error) {
	if page < 1 {
		page = 1
	}
	items, total, err := s.complaints.List(ctx, term, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, err
	}
	return &ComplaintList{
		Items:       items,
		TotalPages:  repository.TotalPages(total, s.pageSize),
		CurrentPage: page,
	}, nil
}

// Create files a complaint under a unique case number.
func (s *ComplaintService) Create(ctx context.Context, filedBy *domain.Account, input ComplaintCreateInput) (*domain.Complaint, error) {
	caseNumber := strings.TrimSpace(input.CaseNumber)
	if caseNumber == "" {
		caseNumber = "CMP-" + uuid.NewString()
	} else {
		if _, err := s.complaints.GetByCaseNumber(ctx, caseNumber); err == nil {
			return nil, apperrors.NewConflict("Complaint already exists")
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
	}

	complaint := &domain.Complaint{
		CaseNumber:  caseNumber,
		Complainant: input.Complainant,
		Respondent:  input.Respondent,
		Subject:     input.Subject,
		Details:     input.Details,
		Status:      domain.ComplaintOpen,
	}
	if filedBy != nil {
		complaint.FiledByID = &filedBy.ID
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("Complaint already exists")
		}
		return nil, err
	}

	if s.dispatcher != nil {
		actor := ""
		if filedBy != nil {
			actor = filedBy.Email
		}
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventComplaintFiled,
			SubjectID:  complaint.ID,
			ActorEmail: actor,
			Timestamp:  time.Now(),
			Payload: events.ComplaintFiledPayload{
				CaseNumber:  complaint.CaseNumber,
				Complainant: complaint.Complainant,
				Subject:     complaint.Subject,
			},
		})
	}
	return complaint, nil
}

// Update merges the provided fields into an existing complaint.
func (s *ComplaintService) Update(ctx context.Context, id string, patch domain.ComplaintPatch) error {
	if err := s.complaints.Update(ctx, id, patch); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Complaint")
		}
		return err
	}
	return nil
}

// Delete removes a complaint.
func (s *ComplaintService) Delete(ctx context.Context, id string) error {
	if err := s.complaints.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Complaint")
		}
		return err
	}
	return nil
}
