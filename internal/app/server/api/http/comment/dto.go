package comment

import (
	"time"

	"futuremail/internal/domain/comment"
)

// The {id} path segment is the capsule id for list/create and the comment id
// for delete; chi requires one wildcard name per route segment.
type listInput struct {
	CapsuleID int64 `path:"id"`
}

type listOutput struct {
	Body []Response
}

type createInput struct {
	CapsuleID int64 `path:"id"`
	Body      createRequest
}

type createRequest struct {
	Message string `json:"message,omitempty"`
}

type createOutput struct {
	Body Response
}

type deleteInput struct {
	ID int64 `path:"id"`
}

type deleteOutput struct {
	Body messageResponse
}

type messageResponse struct {
	Message string `json:"message"`
}

type Response struct {
	ID        int64     `json:"id"`
	CapsuleID int64     `json:"capsuleId"`
	UserID    int64     `json:"userId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(c *comment.Comment) Response {
	return Response{
		ID:        c.ID,
		CapsuleID: c.CapsuleID,
		UserID:    c.UserID,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}
