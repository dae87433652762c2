package capsule

import "time"

// Capsule is a dated message owned by one user. It is readable by everyone
// once the reveal date passes; "revealed" is derived from the clock, never
// persisted. NotificationSent flips false->true exactly once, and only the
// unlock sweep may flip it.
type Capsule struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	ImageURL         string    `json:"image_url,omitempty"`
	RevealDate       time.Time `json:"reveal_date"`
	IsPrivate        bool      `json:"is_private"`
	NotificationSent bool      `json:"notification_sent"`
	CreatedAt        time.Time `json:"created_at"`
}

// Revealed reports whether the capsule is readable by non-owners at the
// given instant. The boundary is inclusive: a capsule revealing exactly now
// is revealed.
func (c *Capsule) Revealed(now time.Time) bool {
	return !now.Before(c.RevealDate)
}
