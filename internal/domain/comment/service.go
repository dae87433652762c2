package comment

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	ListByCapsule(ctx context.Context, capsuleID int64) ([]Comment, error)
	Add(ctx context.Context, authorID, capsuleID int64, message string) (*Comment, error)
	Delete(ctx context.Context, requesterID, commentID int64) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "comment_service"),
	}
}

func (s *Service) ListByCapsule(ctx context.Context, capsuleID int64) ([]Comment, error) {
	comments, err := s.repo.ListByCapsule(ctx, capsuleID)
	if err != nil {
		s.log.Error("failed to list comments", "capsule_id", capsuleID, "error", err)
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *Service) Add(ctx context.Context, authorID, capsuleID int64, message string) (*Comment, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}

	c := &Comment{
		CapsuleID: capsuleID,
		UserID:    authorID,
		Message:   message,
	}

	var err error
	c.ID, err = s.repo.Create(ctx, c)
	if err != nil {
		s.log.Error("failed to add comment", "capsule_id", capsuleID, "error", err)
		return nil, fmt.Errorf("add comment: %w", err)
	}

	s.log.Info("comment added", "comment_id", c.ID, "capsule_id", capsuleID, "user_id", authorID)
	return c, nil
}

// Delete removes a comment. Author only; the capsule owner has no say here.
func (s *Service) Delete(ctx context.Context, requesterID, commentID int64) error {
	c, err := s.repo.Get(ctx, commentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get comment: %w", err)
	}
	if c.UserID != requesterID {
		return ErrNotAuthor
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		s.log.Error("failed to delete comment", "comment_id", commentID, "error", err)
		return fmt.Errorf("delete comment: %w", err)
	}

	s.log.Info("comment deleted", "comment_id", commentID, "user_id", requesterID)
	return nil
}
