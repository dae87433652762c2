package media

import "time"

// Media is a binary attachment tied to a capsule. The dashboard uploads one
// image per capsule and reads it back by capsule id.
type Media struct {
	ID          int64
	CapsuleID   int64
	Data        []byte
	ContentType string
	UploadedAt  time.Time
}
