package comment

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"futuremail/internal/app/server/api/http/middleware/auth"
	"futuremail/internal/domain/comment"
)

type Handler struct {
	service    comment.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service comment.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	if _, ok := auth.GetUserID(ctx); !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	comments, err := h.service.ListByCapsule(ctx, input.CapsuleID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Error fetching comments")
	}

	out := &listOutput{Body: make([]Response, 0, len(comments))}
	for i := range comments {
		out.Body = append(out.Body, toResponse(&comments[i]))
	}
	return out, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	c, err := h.service.Add(ctx, userID, input.CapsuleID, input.Body.Message)
	if err != nil {
		if errors.Is(err, comment.ErrEmptyMessage) {
			return nil, huma.Error400BadRequest("Comment message is required")
		}
		return nil, huma.Error500InternalServerError("Error adding comment")
	}

	return &createOutput{Body: toResponse(c)}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		switch {
		case errors.Is(err, comment.ErrNotFound):
			return nil, huma.Error404NotFound("Comment not found")
		case errors.Is(err, comment.ErrNotAuthor):
			return nil, huma.Error403Forbidden("Not authorized")
		default:
			return nil, huma.Error500InternalServerError("Error deleting comment")
		}
	}

	return &deleteOutput{Body: messageResponse{Message: "Comment deleted successfully"}}, nil
}
