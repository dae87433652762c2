package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByGoogleID(ctx context.Context, googleID string) (User, error) {
	args := m.Called(ctx, googleID)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) UpdateAccessToken(ctx context.Context, id int64, accessToken string) error {
	args := m.Called(ctx, id, accessToken)
	return args.Error(0)
}

func (m *MockRepository) UpdateUsername(ctx context.Context, id int64, username string) error {
	args := m.Called(ctx, id, username)
	return args.Error(0)
}

func TestService_UpsertFromGoogle_ExistingUser(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	existing := User{ID: 1, GoogleID: "g-123", Email: "john@example.com", Username: "johndoe"}
	mockRepo.On("FindByGoogleID", mock.Anything, "g-123").Return(existing, nil)
	mockRepo.On("UpdateAccessToken", mock.Anything, int64(1), "fresh-token").Return(nil)

	u, err := service.UpsertFromGoogle(context.Background(), GoogleProfile{
		ID:          "g-123",
		Email:       "john@example.com",
		Name:        "John Doe",
		AccessToken: "fresh-token",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "fresh-token", u.AccessToken)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_UpsertFromGoogle_NewUser(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("FindByGoogleID", mock.Anything, "g-123").Return(User{}, ErrNotFound)
	mockRepo.On("FindByUsername", mock.Anything, "johndoe").Return(User{}, ErrNotFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.GoogleID == "g-123" && u.Username == "johndoe"
	})).Return(int64(5), nil)

	u, err := service.UpsertFromGoogle(context.Background(), GoogleProfile{
		ID:    "g-123",
		Email: "john@example.com",
		Name:  "John Doe",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), u.ID)
	assert.Equal(t, "johndoe", u.Username)
	mockRepo.AssertExpectations(t)
}

func TestService_UpsertFromGoogle_UsernameCollision(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("FindByGoogleID", mock.Anything, "g-456").Return(User{}, ErrNotFound)
	// "johndoe" and "johndoe1" are taken; "johndoe2" is free.
	mockRepo.On("FindByUsername", mock.Anything, "johndoe").Return(User{ID: 1}, nil)
	mockRepo.On("FindByUsername", mock.Anything, "johndoe1").Return(User{ID: 2}, nil)
	mockRepo.On("FindByUsername", mock.Anything, "johndoe2").Return(User{}, ErrNotFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.Username == "johndoe2"
	})).Return(int64(3), nil)

	u, err := service.UpsertFromGoogle(context.Background(), GoogleProfile{
		ID:    "g-456",
		Email: "other@example.com",
		Name:  "John Doe",
	})

	assert.NoError(t, err)
	assert.Equal(t, "johndoe2", u.Username)
	mockRepo.AssertExpectations(t)
}

func TestService_UpdateUsername(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	updated := User{ID: 1, Email: "john@example.com", Username: "newname"}
	mockRepo.On("FindByUsername", mock.Anything, "newname").Return(User{}, ErrNotFound)
	mockRepo.On("UpdateUsername", mock.Anything, int64(1), "newname").Return(nil)
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(updated, nil)

	u, err := service.UpdateUsername(context.Background(), 1, "newname")

	assert.NoError(t, err)
	assert.Equal(t, "newname", u.Username)
	mockRepo.AssertExpectations(t)
}

func TestService_UpdateUsername_Invalid(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.UpdateUsername(context.Background(), 1, "a!")

	assert.ErrorIs(t, err, ErrInvalidUsername)
	mockRepo.AssertNotCalled(t, "UpdateUsername")
}

func TestService_UpdateUsername_Taken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("FindByUsername", mock.Anything, "taken").Return(User{ID: 99}, nil)

	_, err := service.UpdateUsername(context.Background(), 1, "taken")

	assert.ErrorIs(t, err, ErrUsernameTaken)
	mockRepo.AssertNotCalled(t, "UpdateUsername")
}

func TestService_UpdateUsername_KeepingOwnName(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	self := User{ID: 1, Email: "john@example.com", Username: "johndoe"}
	mockRepo.On("FindByUsername", mock.Anything, "johndoe").Return(self, nil)
	mockRepo.On("UpdateUsername", mock.Anything, int64(1), "johndoe").Return(nil)
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(self, nil)

	// Re-submitting your own username is not a conflict.
	u, err := service.UpdateUsername(context.Background(), 1, "johndoe")

	assert.NoError(t, err)
	assert.Equal(t, "johndoe", u.Username)
}

func TestService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("FindByID", mock.Anything, int64(404)).Return(User{}, ErrNotFound)

	_, err := service.Get(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_UpsertFromGoogle_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("FindByGoogleID", mock.Anything, "g-123").Return(User{}, errors.New("database error"))

	_, err := service.UpsertFromGoogle(context.Background(), GoogleProfile{ID: "g-123"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}
