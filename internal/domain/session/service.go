package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, userID int64) (string, error)
	Validate(ctx context.Context, token string) (int64, error)
	Destroy(ctx context.Context, token string) error
}

type Service struct {
	repo Repository
	ttl  time.Duration
	log  *slog.Logger
}

func NewService(repo Repository, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		ttl:  ttl,
		log:  log.With("component", "session_service"),
	}
}

// Create issues an opaque session token for a logged-in user. Only the
// SHA-256 hash is stored.
func (s *Service) Create(ctx context.Context, userID int64) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	token := base64.URLEncoding.EncodeToString(tokenBytes)
	hash := sha256.Sum256([]byte(token))

	expiresAt := time.Now().Add(s.ttl)
	if err := s.repo.Create(ctx, userID, hash[:], expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

func (s *Service) Validate(ctx context.Context, token string) (int64, error) {
	hash := sha256.Sum256([]byte(token))
	return s.repo.Validate(ctx, hash[:])
}

// Destroy removes the session on logout. A token that is already gone is not
// an error.
func (s *Service) Destroy(ctx context.Context, token string) error {
	hash := sha256.Sum256([]byte(token))
	if err := s.repo.Delete(ctx, hash[:]); err != nil {
		s.log.Error("failed to delete session", "error", err)
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
