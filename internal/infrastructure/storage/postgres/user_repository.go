package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"futuremail/internal/domain/user"
)

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (google_id, email, username, access_token)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		u.GoogleID, u.Email, u.Username, u.AccessToken).Scan(&id, &u.CreatedAt)
	if err != nil {
		r.log.Error("failed to create user", "google_id", u.GoogleID, "error", err)
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (user.User, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) FindByGoogleID(ctx context.Context, googleID string) (user.User, error) {
	return r.findOne(ctx, `WHERE google_id = $1`, googleID)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (user.User, error) {
	return r.findOne(ctx, `WHERE username = $1`, username)
}

func (r *UserRepository) UpdateAccessToken(ctx context.Context, id int64, accessToken string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET access_token = $1 WHERE id = $2`, accessToken, id)
	if err != nil {
		return fmt.Errorf("update access token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateUsername(ctx context.Context, id int64, username string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET username = $1 WHERE id = $2`, username, id)
	if err != nil {
		return fmt.Errorf("update username: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg any) (user.User, error) {
	var u user.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, google_id, email, username, access_token, created_at
		 FROM users `+where, arg).
		Scan(&u.ID, &u.GoogleID, &u.Email, &u.Username, &u.AccessToken, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}
