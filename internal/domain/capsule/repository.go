package capsule

import (
	"context"
	"time"
)

type Repository interface {
	ListByOwner(ctx context.Context, userID int64) ([]Capsule, error)
	Get(ctx context.Context, id int64) (*Capsule, error)
	Create(ctx context.Context, c *Capsule) (int64, error)
	Update(ctx context.Context, c *Capsule) error
	Delete(ctx context.Context, id int64) error

	// Sweep support.
	ListPendingNotification(ctx context.Context, now time.Time) ([]Capsule, error)
	MarkNotified(ctx context.Context, id int64) error
}
