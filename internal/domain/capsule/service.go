package capsule

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, ownerID int64) ([]Capsule, error)
	Create(ctx context.Context, ownerID int64, in CreateInput) (*Capsule, error)
	Get(ctx context.Context, requesterID, capsuleID int64) (*Capsule, error)
	Update(ctx context.Context, requesterID, capsuleID int64, in UpdateInput) (*Capsule, error)
	Delete(ctx context.Context, requesterID, capsuleID int64) error
}

// CreateInput carries the client-supplied fields for a new capsule. The
// reveal date is an RFC 3339 string, validated here rather than by the
// router so the response names the field.
type CreateInput struct {
	Title      string
	Message    string
	RevealDate string
	ImageURL   string
	IsPrivate  *bool
}

// UpdateInput is a partial update: nil fields are left untouched. Changing
// the reveal date never resets the notification flag.
type UpdateInput struct {
	Title      *string
	Message    *string
	RevealDate *string
	ImageURL   *string
	IsPrivate  *bool
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "capsule_service"),
		now:  time.Now,
	}
}

// List returns every capsule owned by the caller, locked or not.
func (s *Service) List(ctx context.Context, ownerID int64) ([]Capsule, error) {
	capsules, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list capsules", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("list capsules: %w", err)
	}
	return capsules, nil
}

func (s *Service) Create(ctx context.Context, ownerID int64, in CreateInput) (*Capsule, error) {
	if in.Title == "" {
		return nil, &ValidationError{Field: "title", Reason: "title is required"}
	}
	if in.Message == "" {
		return nil, &ValidationError{Field: "message", Reason: "message is required"}
	}
	revealDate, err := parseRevealDate(in.RevealDate)
	if err != nil {
		return nil, err
	}
	if err := validateImageURL(in.ImageURL); err != nil {
		return nil, err
	}

	isPrivate := true
	if in.IsPrivate != nil {
		isPrivate = *in.IsPrivate
	}

	c := &Capsule{
		UserID:     ownerID,
		Title:      in.Title,
		Message:    in.Message,
		ImageURL:   in.ImageURL,
		RevealDate: revealDate,
		IsPrivate:  isPrivate,
	}

	c.ID, err = s.repo.Create(ctx, c)
	if err != nil {
		s.log.Error("failed to create capsule", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("create capsule: %w", err)
	}

	s.log.Info("capsule created", "capsule_id", c.ID, "user_id", ownerID,
		"reveal_date", c.RevealDate)
	return c, nil
}

// Get loads a capsule and applies the visibility gate: owner always,
// non-owner only once revealed. Existence is checked before ownership.
func (s *Service) Get(ctx context.Context, requesterID, capsuleID int64) (*Capsule, error) {
	c, err := s.getExisting(ctx, capsuleID)
	if err != nil {
		return nil, err
	}
	if err := CanRead(c, requesterID, s.now()); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, requesterID, capsuleID int64, in UpdateInput) (*Capsule, error) {
	c, err := s.getExisting(ctx, capsuleID)
	if err != nil {
		return nil, err
	}
	if err := CanWrite(c, requesterID); err != nil {
		return nil, err
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, &ValidationError{Field: "title", Reason: "title must not be empty"}
		}
		c.Title = *in.Title
	}
	if in.Message != nil {
		if *in.Message == "" {
			return nil, &ValidationError{Field: "message", Reason: "message must not be empty"}
		}
		c.Message = *in.Message
	}
	if in.RevealDate != nil {
		revealDate, err := parseRevealDate(*in.RevealDate)
		if err != nil {
			return nil, err
		}
		// NotificationSent is deliberately left as-is: a capsule that was
		// already notified does not notify again for a new reveal date.
		c.RevealDate = revealDate
	}
	if in.ImageURL != nil {
		if err := validateImageURL(*in.ImageURL); err != nil {
			return nil, err
		}
		c.ImageURL = *in.ImageURL
	}
	if in.IsPrivate != nil {
		c.IsPrivate = *in.IsPrivate
	}

	if err := s.repo.Update(ctx, c); err != nil {
		s.log.Error("failed to update capsule", "capsule_id", capsuleID, "error", err)
		return nil, fmt.Errorf("update capsule: %w", err)
	}

	s.log.Info("capsule updated", "capsule_id", capsuleID, "user_id", requesterID)
	return c, nil
}

// Delete removes a capsule. Comments and media are not cleaned up here; the
// original system never cascaded and neither do we.
func (s *Service) Delete(ctx context.Context, requesterID, capsuleID int64) error {
	c, err := s.getExisting(ctx, capsuleID)
	if err != nil {
		return err
	}
	if err := CanWrite(c, requesterID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, capsuleID); err != nil {
		s.log.Error("failed to delete capsule", "capsule_id", capsuleID, "error", err)
		return fmt.Errorf("delete capsule: %w", err)
	}

	s.log.Info("capsule deleted", "capsule_id", capsuleID, "user_id", requesterID)
	return nil
}

func (s *Service) getExisting(ctx context.Context, capsuleID int64) (*Capsule, error) {
	c, err := s.repo.Get(ctx, capsuleID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get capsule: %w", err)
	}
	return c, nil
}

func parseRevealDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, &ValidationError{Field: "revealDate", Reason: "revealDate is required"}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// The dashboard's date picker sends a bare date.
		t, err = time.Parse("2006-01-02", raw)
	}
	if err != nil {
		return time.Time{}, &ValidationError{Field: "revealDate", Reason: "revealDate must be a valid ISO-8601 date"}
	}
	return t, nil
}

func validateImageURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return &ValidationError{Field: "imageUrl", Reason: "imageUrl must be a valid URL"}
	}
	return nil
}
