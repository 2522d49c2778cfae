package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/repository"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

// ReportService manages department monthly reports.
type ReportService struct {
	reports  repository.ReportRepository
	pageSize int
}

// NewReportService builds the service.
func NewReportService(reports repository.ReportRepository, pageSize int) *ReportService {
	return &ReportService{reports: reports, pageSize: pageSize}
}

// ReportCreateInput describes a new monthly report.
type ReportCreateInput struct {
	Title        string
	Summary      string
	DepartmentID string
	Month        int
	Year         int
}

// ReportList is one page of reports.
type ReportList struct {
	Items       []domain.MonthlyReport
	TotalPages  int
	CurrentPage int
}

// List returns one page of reports matching the search term.
func (s *ReportService) List(ctx context.Context, page int, term string) (*ReportList, error) {
	if page < 1 {
		page = 1
	}
	items, total, err := s.reports.List(ctx, term, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, err
	}
	return &ReportList{
		Items:       items,
		TotalPages:  repository.TotalPages(total, s.pageSize),
		CurrentPage: page,
	}, nil
}

// Create files one report per department and period. The pre-check races with
// a concurrent identical submission; the unique index backs it up.
func (s *ReportService) Create(ctx context.Context, submittedBy *domain.Account, input ReportCreateInput) (*domain.MonthlyReport, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, apperrors.NewValidationError("Invalid month")
	}

	if _, err := s.reports.GetByPeriod(ctx, input.DepartmentID, input.Month, input.Year); err == nil {
		return nil, apperrors.NewConflict("Report already exists for this period")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	report := &domain.MonthlyReport{
		Title:        input.Title,
		Summary:      input.Summary,
		DepartmentID: input.DepartmentID,
		Month:        input.Month,
		Year:         input.Year,
	}
	if submittedBy != nil {
		report.SubmittedByID = &submittedBy.ID
	}
	if err := s.reports.Create(ctx, report); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("Report already exists for this period")
		}
		return nil, err
	}
	return report, nil
}

// Update merges the provided fields into an existing report.
func (s *ReportService) Update(ctx context.Context, id string, patch domain.MonthlyReportPatch) error {
	if err := s.reports.Update(ctx, id, patch); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Report")
		}
		return err
	}
	return nil
}

// Delete removes a report.
func (s *ReportService) Delete(ctx context.Context, id string) error {
	if err := s.reports.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Report")
		}
		return err
	}
	return nil
}
