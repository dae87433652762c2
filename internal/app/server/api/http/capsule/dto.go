package capsule

import (
	"time"

	"futuremail/internal/domain/capsule"
)

type listOutput struct {
	Body []Response
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	RevealDate string `json:"revealDate,omitempty" doc:"RFC 3339 timestamp or YYYY-MM-DD date"`
	ImageURL   string `json:"imageUrl,omitempty"`
	IsPrivate  *bool  `json:"isPrivate,omitempty"`
}

type createOutput struct {
	Body Response
}

type getInput struct {
	ID int64 `path:"id"`
}

type getOutput struct {
	Body Response
}

type updateInput struct {
	ID   int64 `path:"id"`
	Body updateRequest
}

type updateRequest struct {
	Title      *string `json:"title,omitempty"`
	Message    *string `json:"message,omitempty"`
	RevealDate *string `json:"revealDate,omitempty"`
	ImageURL   *string `json:"imageUrl,omitempty"`
	IsPrivate  *bool   `json:"isPrivate,omitempty"`
}

type updateOutput struct {
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
	ID               int64     `json:"id"`
	UserID           int64     `json:"userId"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	ImageURL         string    `json:"imageUrl,omitempty"`
	RevealDate       time.Time `json:"revealDate"`
	IsPrivate        bool      `json:"isPrivate"`
	NotificationSent bool      `json:"notificationSent"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toResponse(c *capsule.Capsule) Response {
	return Response{
		ID:               c.ID,
		UserID:           c.UserID,
		Title:            c.Title,
		Message:          c.Message,
		ImageURL:         c.ImageURL,
		RevealDate:       c.RevealDate,
		IsPrivate:        c.IsPrivate,
		NotificationSent: c.NotificationSent,
		CreatedAt:        c.CreatedAt,
	}
}
