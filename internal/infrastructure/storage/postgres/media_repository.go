package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"futuremail/internal/domain/media"
)

// MediaRepository stores attachment bytes in a bytea column, mirroring how
// the original kept image buffers in its document store.
type MediaRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewMediaRepository(pool *pgxpool.Pool, log *slog.Logger) *MediaRepository {
	return &MediaRepository{
		pool: pool,
		log:  log.With("component", "media_repository"),
	}
}

func (r *MediaRepository) Save(ctx context.Context, m *media.Media) (int64, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO media (capsule_id, data, content_type)
		 VALUES ($1, $2, $3)
		 RETURNING id, uploaded_at`,
		m.CapsuleID, m.Data, m.ContentType).Scan(&m.ID, &m.UploadedAt)
	if err != nil {
		r.log.Error("failed to save media", "capsule_id", m.CapsuleID, "error", err)
		return 0, fmt.Errorf("save media: %w", err)
	}
	return m.ID, nil
}

func (r *MediaRepository) GetByCapsule(ctx context.Context, capsuleID int64) (*media.Media, error) {
	var m media.Media
	err := r.pool.QueryRow(ctx,
		`SELECT id, capsule_id, data, content_type, uploaded_at
		 FROM media
		 WHERE capsule_id = $1
		 ORDER BY uploaded_at DESC
		 LIMIT 1`, capsuleID).
		Scan(&m.ID, &m.CapsuleID, &m.Data, &m.ContentType, &m.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, media.ErrNotFound
		}
		return nil, fmt.Errorf("get media: %w", err)
	}
	return &m, nil
}
