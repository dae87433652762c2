package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"futuremail/internal/domain/capsule"
)

const capsuleColumns = `id, user_id, title, message, image_url, reveal_date,
	is_private, notification_sent, created_at`

type CapsuleRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewCapsuleRepository(pool *pgxpool.Pool, log *slog.Logger) *CapsuleRepository {
	return &CapsuleRepository{
		pool: pool,
		log:  log.With("component", "capsule_repository"),
	}
}

func (r *CapsuleRepository) ListByOwner(ctx context.Context, userID int64) ([]capsule.Capsule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+capsuleColumns+` FROM capsules
		 WHERE user_id = $1
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		r.log.Error("failed to list capsules", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list capsules: %w", err)
	}
	defer rows.Close()

	return scanCapsules(rows)
}

func (r *CapsuleRepository) Get(ctx context.Context, id int64) (*capsule.Capsule, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+capsuleColumns+` FROM capsules WHERE id = $1`, id)

	c, err := scanCapsule(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, capsule.ErrNotFound
		}
		r.log.Error("failed to get capsule", "capsule_id", id, "error", err)
		return nil, fmt.Errorf("get capsule: %w", err)
	}
	return c, nil
}

func (r *CapsuleRepository) Create(ctx context.Context, c *capsule.Capsule) (int64, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO capsules (user_id, title, message, image_url, reveal_date, is_private)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, notification_sent, created_at`,
		c.UserID, c.Title, c.Message, c.ImageURL, c.RevealDate, c.IsPrivate).
		Scan(&c.ID, &c.NotificationSent, &c.CreatedAt)
	if err != nil {
		r.log.Error("failed to create capsule", "user_id", c.UserID, "error", err)
		return 0, fmt.Errorf("create capsule: %w", err)
	}
	return c.ID, nil
}

// Update writes content fields only. notification_sent is owned by
// MarkNotified and never touched here.
func (r *CapsuleRepository) Update(ctx context.Context, c *capsule.Capsule) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE capsules
		 SET title = $1, message = $2, image_url = $3, reveal_date = $4, is_private = $5
		 WHERE id = $6`,
		c.Title, c.Message, c.ImageURL, c.RevealDate, c.IsPrivate, c.ID)
	if err != nil {
		r.log.Error("failed to update capsule", "capsule_id", c.ID, "error", err)
		return fmt.Errorf("update capsule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return capsule.ErrNotFound
	}
	return nil
}

func (r *CapsuleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM capsules WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete capsule", "capsule_id", id, "error", err)
		return fmt.Errorf("delete capsule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return capsule.ErrNotFound
	}
	return nil
}

func (r *CapsuleRepository) ListPendingNotification(ctx context.Context, now time.Time) ([]capsule.Capsule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+capsuleColumns+` FROM capsules
		 WHERE reveal_date <= $1 AND NOT notification_sent`, now)
	if err != nil {
		r.log.Error("failed to list pending capsules", "error", err)
		return nil, fmt.Errorf("list pending capsules: %w", err)
	}
	defer rows.Close()

	return scanCapsules(rows)
}

func (r *CapsuleRepository) MarkNotified(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE capsules SET notification_sent = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return capsule.ErrNotFound
	}
	return nil
}

func scanCapsules(rows pgx.Rows) ([]capsule.Capsule, error) {
	var capsules []capsule.Capsule
	for rows.Next() {
		c, err := scanCapsule(rows)
		if err != nil {
			return nil, err
		}
		capsules = append(capsules, *c)
	}
	return capsules, rows.Err()
}

func scanCapsule(row pgx.Row) (*capsule.Capsule, error) {
	var c capsule.Capsule
	err := row.Scan(
		&c.ID, &c.UserID, &c.Title, &c.Message, &c.ImageURL,
		&c.RevealDate, &c.IsPrivate, &c.NotificationSent, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
