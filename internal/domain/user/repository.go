package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) (int64, error)
	FindByID(ctx context.Context, id int64) (User, error)
	FindByGoogleID(ctx context.Context, googleID string) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	UpdateAccessToken(ctx context.Context, id int64, accessToken string) error
	UpdateUsername(ctx context.Context, id int64, username string) error
}
