package session

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, userID int64, tokenHash []byte, expiresAt time.Time) error
	Validate(ctx context.Context, tokenHash []byte) (int64, error)
	Delete(ctx context.Context, tokenHash []byte) error
}
