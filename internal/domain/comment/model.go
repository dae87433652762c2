package comment

import "time"

// Comment is immutable once created; only its author may delete it.
type Comment struct {
	ID        int64     `json:"id"`
	CapsuleID int64     `json:"capsule_id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
