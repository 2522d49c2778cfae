package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/repository"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

// MemoService manages internal memos.
type MemoService struct {
	memos    repository.MemoRepository
	pageSize int
}

// NewMemoService builds the service.
func NewMemoService(memos repository.MemoRepository, pageSize int) *MemoService {
	return &MemoService{memos: memos, pageSize: pageSize}
}

// MemoList is one page of memos.
type MemoList struct {
	Items       []domain.Memo
	TotalPages  int
	CurrentPage int
}

// List returns one page of memos matching the search term.
func (s *MemoService) List(ctx context.Context, page int, term string) (*MemoList, error) {
	if page < 1 {
		page = 1
	}
	items, total, err := s.memos.List(ctx, term, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, err
	}
	return &MemoList{
		Items:       items,
		TotalPages:  repository.TotalPages(total, s.pageSize),
		CurrentPage: page,
	}, nil
}

// Create persists a memo attributed to the session account.
func (s *MemoService) Create(ctx context.Context, author *domain.Account, title, body, recipient string) (*domain.Memo, error) {
	memo := &domain.Memo{Title: title, Body: body, Recipient: recipient}
	if author != nil {
		memo.AuthorID = &author.ID
	}
	if err := s.memos.Create(ctx, memo); err != nil {
		return nil, err
	}
	return memo, nil
}

// Update merges the provided fields into an existing memo.
func (s *MemoService) Update(ctx context.Context, id string, patch domain.MemoPatch) error {
	if err := s.memos.Update(ctx, id, patch); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Memo")
		}
		return err
	}
	return nil
}

// Delete removes a memo.
func (s *MemoService) Delete(ctx context.Context, id string) error {
	if err := s.memos.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Memo")
		}
		return err
	}
	return nil
}
