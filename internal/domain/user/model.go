package user

import "time"

// User is an account created on first Google login. Accounts are never
// hard-deleted.
type User struct {
	ID          int64     `json:"id"`
	GoogleID    string    `json:"-"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	AccessToken string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// GoogleProfile carries the fields we consume from the Google userinfo
// endpoint after a successful code exchange.
type GoogleProfile struct {
	ID          string
	Email       string
	Name        string
	AccessToken string
}
