package media

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Upload(ctx context.Context, capsuleID int64, data []byte, contentType string) (int64, error)
	GetByCapsule(ctx context.Context, capsuleID int64) (*Media, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "media_service"),
	}
}

func (s *Service) Upload(ctx context.Context, capsuleID int64, data []byte, contentType string) (int64, error) {
	if len(data) == 0 {
		return 0, ErrNoFile
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	m := &Media{
		CapsuleID:   capsuleID,
		Data:        data,
		ContentType: contentType,
	}

	id, err := s.repo.Save(ctx, m)
	if err != nil {
		s.log.Error("failed to save media", "capsule_id", capsuleID, "error", err)
		return 0, fmt.Errorf("save media: %w", err)
	}

	s.log.Info("media uploaded", "media_id", id, "capsule_id", capsuleID,
		"content_type", contentType, "size", len(data))
	return id, nil
}

func (s *Service) GetByCapsule(ctx context.Context, capsuleID int64) (*Media, error) {
	m, err := s.repo.GetByCapsule(ctx, capsuleID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to fetch media", "capsule_id", capsuleID, "error", err)
		return nil, fmt.Errorf("fetch media: %w", err)
	}
	return m, nil
}
