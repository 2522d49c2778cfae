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

// LeaveService manages staff leave applications.
type LeaveService struct {
	leaves     repository.LeaveRepository
	dispatcher events.Dispatcher
	pageSize   int
}

// NewLeaveService builds the service.
func NewLeaveService(leaves repository.LeaveRepository, dispatcher events.Dispatcher, pageSize int) *LeaveService {
	return &LeaveService{leaves: leaves, dispatcher: dispatcher, pageSize: pageSize}
}

// LeaveCreateInput describes a new leave application.
type LeaveCreateInput struct {
	LeaveType string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

// LeaveList is one page of leave applications.
type LeaveList struct {
	Items       []domain.LeaveApplication
	TotalPages  int
	CurrentPage int
}

// List returns one page of leave applications matching the search term.
func (s *LeaveService) List(ctx context.Context, page int, term string) (*LeaveList, error) {
	if page < 1 {
		page = 1
	}
	items, total, err := s.leaves.List(ctx, term, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, err
	}
	return &LeaveList{
		Items:       items,
		TotalPages:  repository.TotalPages(total, s.pageSize),
		CurrentPage: page,
	}, nil
}

// Create files a pending application for the session account.
func (s *LeaveService) Create(ctx context.Context, applicant *domain.Account, input LeaveCreateInput) (*domain.LeaveApplication, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, apperrors.NewValidationError("End date precedes start date")
	}

	leave := &domain.LeaveApplication{
		LeaveType: input.LeaveType,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Reason:    input.Reason,
		Status:    domain.LeavePending,
	}
	if applicant != nil {
		leave.ApplicantID = &applicant.ID
		leave.ApplicantName = applicant.Name
	}
	if err := s.leaves.Create(ctx, leave); err != nil {
		return nil, err
	}
	return leave, nil
}

// Update merges the provided fields into an application. A status change to
// approved or rejected records the decider and notifies the applicant.
func (s *LeaveService) Update(ctx context.Context, actor *domain.Account, id string, patch domain.LeaveApplicationPatch) error {
	if patch.StartDate != nil && patch.EndDate != nil && patch.EndDate.Before(*patch.StartDate) {
		return apperrors.NewValidationError("End date precedes start date")
	}

	var decidedByID *string
	decided := patch.Status != nil && (*patch.Status == domain.LeaveApproved || *patch.Status == domain.LeaveRejected)
	if decided && actor != nil {
		decidedByID = &actor.ID
	}

	if err := s.leaves.Update(ctx, id, patch, decidedByID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Leave application")
		}
		return err
	}

	if decided && s.dispatcher != nil {
		leave, err := s.leaves.GetByID(ctx, id)
		if err != nil {
			return nil
		}
		actorEmail := ""
		if actor != nil {
			actorEmail = actor.Email
		}
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventLeaveDecided,
			SubjectID:  leave.ID,
			ActorEmail: actorEmail,
			Timestamp:  time.Now(),
			Payload: events.LeaveDecidedPayload{
				ApplicantName: leave.ApplicantName,
				LeaveType:     leave.LeaveType,
				Status:        leave.Status,
			},
		})
	}
	return nil
}

// Delete removes an application.
func (s *LeaveService) Delete(ctx context.Context, id string) error {
	if err := s.leaves.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Leave application")
		}
		return err
	}
	return nil
}

// ExportAll returns every application for the CSV download.
func (s *LeaveService) ExportAll(ctx context.Context) ([]domain.LeaveApplication, error) {
	return s.leaves.ListAll(ctx)
}
