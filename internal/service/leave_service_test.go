package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/events"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

func TestLeaveCreate(t *testing.T) {
	repo := newMockLeaveRepository()
	svc := NewLeaveService(repo, &recordingDispatcher{}, 10)

	applicant := &domain.Account{ID: "acc-1", Name: "Pat Clerk"}
	leave, err := svc.Create(context.Background(), applicant, LeaveCreateInput{
		LeaveType: "annual",
		StartDate: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
		Reason:    "family visit",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.LeavePending, leave.Status)
	assert.Equal(t, "Pat Clerk", leave.ApplicantName)
}

func TestLeaveCreateRejectsInvertedRange(t *testing.T) {
	svc := NewLeaveService(newMockLeaveRepository(), &recordingDispatcher{}, 10)

	_, err := svc.Create(context.Background(), nil, LeaveCreateInput{
		LeaveType: "annual",
		StartDate: time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 400, domainErr.HTTPStatus)
}

func TestLeaveDecisionRecordsDeciderAndNotifies(t *testing.T) {
	repo := newMockLeaveRepository()
	repo.byID["leave-1"] = &domain.LeaveApplication{
		ID:            "leave-1",
		ApplicantName: "Pat Clerk",
		LeaveType:     "annual",
		Status:        domain.LeavePending,
	}
	dispatcher := &recordingDispatcher{}
	svc := NewLeaveService(repo, dispatcher, 10)

	actor := &domain.Account{ID: "mgr-1", Email: "manager@office.example"}
	approved := domain.LeaveApproved
	err := svc.Update(context.Background(), actor, "leave-1", domain.LeaveApplicationPatch{Status: &approved})
	require.NoError(t, err)

	require.NotNil(t, repo.lastDecidedBy)
	assert.Equal(t, "mgr-1", *repo.lastDecidedBy)

	published := dispatcher.events()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventLeaveDecided, published[0].Type)
	assert.Equal(t, "leave-1", published[0].SubjectID)
	assert.Equal(t, "manager@office.example", published[0].ActorEmail)
}

func TestLeaveUpdateWithoutDecisionStaysQuiet(t *testing.T) {
	repo := newMockLeaveRepository()
	repo.byID["leave-1"] = &domain.LeaveApplication{ID: "leave-1", Status: domain.LeavePending}
	dispatcher := &recordingDispatcher{}
	svc := NewLeaveService(repo, dispatcher, 10)

	reason := "updated reason"
	err := svc.Update(context.Background(), nil, "leave-1", domain.LeaveApplicationPatch{Reason: &reason})
	require.NoError(t, err)
	assert.Nil(t, repo.lastDecidedBy)
	assert.Empty(t, dispatcher.events())
}

func TestLeaveUpdateMissing(t *testing.T) {
	svc := NewLeaveService(newMockLeaveRepository(), &recordingDispatcher{}, 10)

	err := svc.Update(context.Background(), nil, "missing", domain.LeaveApplicationPatch{})
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 404, domainErr.HTTPStatus)
}
