package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"futuremail/internal/domain/comment"
)

type CommentRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewCommentRepository(pool *pgxpool.Pool, log *slog.Logger) *CommentRepository {
	return &CommentRepository{
		pool: pool,
		log:  log.With("component", "comment_repository"),
	}
}

func (r *CommentRepository) ListByCapsule(ctx context.Context, capsuleID int64) ([]comment.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, capsule_id, user_id, message, created_at
		 FROM comments
		 WHERE capsule_id = $1
		 ORDER BY created_at DESC`, capsuleID)
	if err != nil {
		r.log.Error("failed to list comments", "capsule_id", capsuleID, "error", err)
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []comment.Comment
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(&c.ID, &c.CapsuleID, &c.UserID, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) Get(ctx context.Context, id int64) (*comment.Comment, error) {
	var c comment.Comment
	err := r.pool.QueryRow(ctx,
		`SELECT id, capsule_id, user_id, message, created_at
		 FROM comments WHERE id = $1`, id).
		Scan(&c.ID, &c.CapsuleID, &c.UserID, &c.Message, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) (int64, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO comments (capsule_id, user_id, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		c.CapsuleID, c.UserID, c.Message).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		r.log.Error("failed to create comment", "capsule_id", c.CapsuleID, "error", err)
		return 0, fmt.Errorf("create comment: %w", err)
	}
	return c.ID, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrNotFound
	}
	return nil
}
