package comment

import "context"

type Repository interface {
	// ListByCapsule returns comments newest first.
	ListByCapsule(ctx context.Context, capsuleID int64) ([]Comment, error)
	Get(ctx context.Context, id int64) (*Comment, error)
	Create(ctx context.Context, c *Comment) (int64, error)
	Delete(ctx context.Context, id int64) error
}
