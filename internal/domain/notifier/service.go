package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"futuremail/internal/domain/capsule"
	"futuremail/internal/domain/user"
)

// Mailer sends the one-time unlock email to a capsule owner.
type Mailer interface {
	SendUnlockEmail(ctx context.Context, to user.User, c capsule.Capsule) error
}

// Result summarizes one sweep run.
type Result struct {
	Notified int
	Skipped  int
	Failed   int
}

type Service struct {
	capsules capsule.Repository
	users    user.Repository
	mailer   Mailer
	log      *slog.Logger
}

func NewService(capsules capsule.Repository, users user.Repository, mailer Mailer, log *slog.Logger) *Service {
	return &Service{
		capsules: capsules,
		users:    users,
		mailer:   mailer,
		log:      log.With("component", "unlock_notifier"),
	}
}

// Sweep finds every capsule whose reveal date has passed without a
// notification, emails its owner, and marks it notified. The flag is
// persisted per capsule right after a successful send, so a crash mid-sweep
// only leaves unmarked capsules for the next tick. A failure on one capsule
// never aborts the rest.
func (s *Service) Sweep(ctx context.Context, now time.Time) (Result, error) {
	var res Result

	pending, err := s.capsules.ListPendingNotification(ctx, now)
	if err != nil {
		return res, fmt.Errorf("list pending capsules: %w", err)
	}

	s.log.Info("checking for unlocked capsules", "pending", len(pending))

	for i := range pending {
		c := pending[i]

		owner, err := s.users.FindByID(ctx, c.UserID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				// Orphaned owner reference: skip and leave the flag unset.
				s.log.Warn("no user found for capsule", "capsule_id", c.ID, "user_id", c.UserID)
				res.Skipped++
				continue
			}
			s.log.Error("failed to resolve capsule owner", "capsule_id", c.ID, "error", err)
			res.Failed++
			continue
		}

		if err := s.mailer.SendUnlockEmail(ctx, owner, c); err != nil {
			s.log.Error("failed to send unlock email",
				"capsule_id", c.ID, "email", owner.Email, "error", err)
			res.Failed++
			continue
		}

		if err := s.capsules.MarkNotified(ctx, c.ID); err != nil {
			// The email went out but the flag did not stick; the next tick
			// will retry and may send a duplicate. Logged, not fatal.
			s.log.Error("failed to mark capsule notified", "capsule_id", c.ID, "error", err)
			res.Failed++
			continue
		}

		s.log.Info("notification sent", "capsule_id", c.ID, "email", owner.Email)
		res.Notified++
	}

	s.log.Info("sweep finished",
		"notified", res.Notified, "skipped", res.Skipped, "failed", res.Failed)
	return res, nil
}
