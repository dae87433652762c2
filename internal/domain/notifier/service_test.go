package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"futuremail/internal/domain/capsule"
	"futuremail/internal/domain/user"
)

// MockCapsuleRepository is a mock implementation of capsule.Repository for testing
type MockCapsuleRepository struct {
	mock.Mock
}

func (m *MockCapsuleRepository) ListByOwner(ctx context.Context, userID int64) ([]capsule.Capsule, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]capsule.Capsule), args.Error(1)
}

func (m *MockCapsuleRepository) Get(ctx context.Context, id int64) (*capsule.Capsule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*capsule.Capsule), args.Error(1)
}

func (m *MockCapsuleRepository) Create(ctx context.Context, c *capsule.Capsule) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCapsuleRepository) Update(ctx context.Context, c *capsule.Capsule) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCapsuleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCapsuleRepository) ListPendingNotification(ctx context.Context, now time.Time) ([]capsule.Capsule, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]capsule.Capsule), args.Error(1)
}

func (m *MockCapsuleRepository) MarkNotified(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of user.Repository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepository) FindByGoogleID(ctx context.Context, googleID string) (user.User, error) {
	args := m.Called(ctx, googleID)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepository) UpdateAccessToken(ctx context.Context, id int64, accessToken string) error {
	args := m.Called(ctx, id, accessToken)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUsername(ctx context.Context, id int64, username string) error {
	args := m.Called(ctx, id, username)
	return args.Error(0)
}

// MockMailer is a mock implementation of the Mailer interface for testing
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendUnlockEmail(ctx context.Context, to user.User, c capsule.Capsule) error {
	args := m.Called(ctx, to, c)
	return args.Error(0)
}

func newSweepService(capsules *MockCapsuleRepository, users *MockUserRepository, mailer *MockMailer) *Service {
	return NewService(capsules, users, mailer, slog.Default())
}

func TestService_Sweep(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	capsules := new(MockCapsuleRepository)
	users := new(MockUserRepository)
	mailer := new(MockMailer)
	service := newSweepService(capsules, users, mailer)

	pending := []capsule.Capsule{{ID: 1, UserID: 10, Title: "hello"}}
	owner := user.User{ID: 10, Email: "owner@example.com", Username: "owner"}

	capsules.On("ListPendingNotification", mock.Anything, now).Return(pending, nil)
	users.On("FindByID", mock.Anything, int64(10)).Return(owner, nil)
	mailer.On("SendUnlockEmail", mock.Anything, owner, pending[0]).Return(nil)
	capsules.On("MarkNotified", mock.Anything, int64(1)).Return(nil)

	res, err := service.Sweep(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Notified)
	assert.Equal(t, 0, res.Skipped)
	assert.Equal(t, 0, res.Failed)

	capsules.AssertExpectations(t)
	users.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestService_Sweep_NothingPending(t *testing.T) {
	now := time.Now()
	capsules := new(MockCapsuleRepository)
	users := new(MockUserRepository)
	mailer := new(MockMailer)
	service := newSweepService(capsules, users, mailer)

	capsules.On("ListPendingNotification", mock.Anything, now).Return([]capsule.Capsule{}, nil)

	res, err := service.Sweep(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, Result{}, res)
	mailer.AssertNotCalled(t, "SendUnlockEmail")
	capsules.AssertNotCalled(t, "MarkNotified")
}

func TestService_Sweep_MissingOwnerSkipped(t *testing.T) {
	now := time.Now()
	capsules := new(MockCapsuleRepository)
	users := new(MockUserRepository)
	mailer := new(MockMailer)
	service := newSweepService(capsules, users, mailer)

	pending := []capsule.Capsule{{ID: 1, UserID: 10}}
	capsules.On("ListPendingNotification", mock.Anything, now).Return(pending, nil)
	users.On("FindByID", mock.Anything, int64(10)).Return(user.User{}, user.ErrNotFound)

	res, err := service.Sweep(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 0, res.Notified)
	// The flag stays unset so the orphan shows up again next tick.
	capsules.AssertNotCalled(t, "MarkNotified")
	mailer.AssertNotCalled(t, "SendUnlockEmail")
}

func TestService_Sweep_OneFailureDoesNotAbort(t *testing.T) {
	now := time.Now()
	capsules := new(MockCapsuleRepository)
	users := new(MockUserRepository)
	mailer := new(MockMailer)
	service := newSweepService(capsules, users, mailer)

	pending := []capsule.Capsule{
		{ID: 1, UserID: 10},
		{ID: 2, UserID: 20},
	}
	first := user.User{ID: 10, Email: "first@example.com"}
	second := user.User{ID: 20, Email: "second@example.com"}

	capsules.On("ListPendingNotification", mock.Anything, now).Return(pending, nil)
	users.On("FindByID", mock.Anything, int64(10)).Return(first, nil)
	users.On("FindByID", mock.Anything, int64(20)).Return(second, nil)
	mailer.On("SendUnlockEmail", mock.Anything, first, pending[0]).Return(errors.New("smtp down"))
	mailer.On("SendUnlockEmail", mock.Anything, second, pending[1]).Return(nil)
	capsules.On("MarkNotified", mock.Anything, int64(2)).Return(nil)

	res, err := service.Sweep(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Notified)
	assert.Equal(t, 1, res.Failed)
	// The capsule whose email failed must not be marked.
	capsules.AssertNotCalled(t, "MarkNotified", mock.Anything, int64(1))
	capsules.AssertExpectations(t)
}

func TestService_Sweep_SendFailureLeavesFlagUnset(t *testing.T) {
	now := time.Now()
	capsules := new(MockCapsuleRepository)
	users := new(MockUserRepository)
	mailer := new(MockMailer)
	service := newSweepService(capsules, users, mailer)

	pending := []capsule.Capsule{{ID: 1, UserID: 10}}
	owner := user.User{ID: 10, Email: "owner@example.com"}

	capsules.On("ListPendingNotification", mock.Anything, now).Return(pending, nil)
	users.On("FindByID", mock.Anything, int64(10)).Return(owner, nil)
	mailer.On("SendUnlockEmail", mock.Anything, owner, pending[0]).Return(errors.New("smtp down"))

	res, err := service.Sweep(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	capsules.AssertNotCalled(t, "MarkNotified")
}

func TestService_Sweep_ListError(t *testing.T) {
	now := time.Now()
	capsules := new(MockCapsuleRepository)
	users := new(MockUserRepository)
	mailer := new(MockMailer)
	service := newSweepService(capsules, users, mailer)

	capsules.On("ListPendingNotification", mock.Anything, now).Return(nil, errors.New("database error"))

	_, err := service.Sweep(context.Background(), now)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}

func TestService_Sweep_MarkFailureCountsAsFailed(t *testing.T) {
	now := time.Now()
	capsules := new(MockCapsuleRepository)
	users := new(MockUserRepository)
	mailer := new(MockMailer)
	service := newSweepService(capsules, users, mailer)

	pending := []capsule.Capsule{{ID: 1, UserID: 10}}
	owner := user.User{ID: 10, Email: "owner@example.com"}

	capsules.On("ListPendingNotification", mock.Anything, now).Return(pending, nil)
	users.On("FindByID", mock.Anything, int64(10)).Return(owner, nil)
	mailer.On("SendUnlockEmail", mock.Anything, owner, pending[0]).Return(nil)
	capsules.On("MarkNotified", mock.Anything, int64(1)).Return(errors.New("database error"))

	res, err := service.Sweep(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, 0, res.Notified)
	assert.Equal(t, 1, res.Failed)
}
