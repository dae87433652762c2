package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	UpsertFromGoogle(ctx context.Context, profile GoogleProfile) (User, error)
	Get(ctx context.Context, id int64) (User, error)
	UpdateUsername(ctx context.Context, id int64, username string) (User, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "user_service"),
	}
}

// UpsertFromGoogle resolves the account for an authenticated Google identity.
// First login creates the account with a generated unique username; later
// logins only refresh the stored access token.
func (s *Service) UpsertFromGoogle(ctx context.Context, profile GoogleProfile) (User, error) {
	u, err := s.repo.FindByGoogleID(ctx, profile.ID)
	if err == nil {
		if err := s.repo.UpdateAccessToken(ctx, u.ID, profile.AccessToken); err != nil {
			return User{}, fmt.Errorf("update access token: %w", err)
		}
		u.AccessToken = profile.AccessToken
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("find user by google id: %w", err)
	}

	username, err := s.uniqueUsername(ctx, baseUsername(profile.Name, profile.Email))
	if err != nil {
		return User{}, fmt.Errorf("generate username: %w", err)
	}

	u = User{
		GoogleID:    profile.ID,
		Email:       profile.Email,
		Username:    username,
		AccessToken: profile.AccessToken,
	}
	u.ID, err = s.repo.Create(ctx, &u)
	if err != nil {
		s.log.Error("failed to create user", "google_id", profile.ID, "error", err)
		return User{}, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("new user created", "user_id", u.ID, "username", username)
	return u, nil
}

func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

// UpdateUsername changes the caller's username after validating format and
// uniqueness.
func (s *Service) UpdateUsername(ctx context.Context, id int64, username string) (User, error) {
	if err := ValidateUsername(username); err != nil {
		return User{}, err
	}

	existing, err := s.repo.FindByUsername(ctx, username)
	if err == nil && existing.ID != id {
		return User{}, ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("check username: %w", err)
	}

	if err := s.repo.UpdateUsername(ctx, id, username); err != nil {
		s.log.Error("failed to update username", "user_id", id, "error", err)
		return User{}, fmt.Errorf("update username: %w", err)
	}

	s.log.Info("username updated", "user_id", id, "username", username)
	return s.Get(ctx, id)
}

// uniqueUsername appends a numeric suffix until the candidate is free,
// e.g. "johndoe", "johndoe1", "johndoe2".
func (s *Service) uniqueUsername(ctx context.Context, base string) (string, error) {
	candidate := base
	for suffix := 1; ; suffix++ {
		_, err := s.repo.FindByUsername(ctx, candidate)
		if errors.Is(err, ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = base + strconv.Itoa(suffix)
	}
}
