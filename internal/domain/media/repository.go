package media

import "context"

// Repository stores capsule attachments. Backed by either Postgres bytea
// rows or an S3 bucket, selected at composition time.
type Repository interface {
	Save(ctx context.Context, m *Media) (int64, error)
	// GetByCapsule returns the capsule's attachment. Usage treats
	// capsule-to-media as one-to-one; with multiple uploads the newest wins.
	GetByCapsule(ctx context.Context, capsuleID int64) (*Media, error)
}
