package capsule

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"futuremail/internal/app/server/api/http/middleware/auth"
	"futuremail/internal/domain/capsule"
)

type Handler struct {
	service    capsule.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service capsule.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	capsules, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Error fetching capsules")
	}

	out := &listOutput{Body: make([]Response, 0, len(capsules))}
	for i := range capsules {
		out.Body = append(out.Body, toResponse(&capsules[i]))
	}
	return out, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	c, err := h.service.Create(ctx, userID, capsule.CreateInput{
		Title:      input.Body.Title,
		Message:    input.Body.Message,
		RevealDate: input.Body.RevealDate,
		ImageURL:   input.Body.ImageURL,
		IsPrivate:  input.Body.IsPrivate,
	})
	if err != nil {
		return nil, h.mapError(err, "Error creating capsule")
	}

	return &createOutput{Body: toResponse(c)}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	c, err := h.service.Get(ctx, userID, input.ID)
	if err != nil {
		return nil, h.mapError(err, "Error fetching capsule")
	}

	return &getOutput{Body: toResponse(c)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	c, err := h.service.Update(ctx, userID, input.ID, capsule.UpdateInput{
		Title:      input.Body.Title,
		Message:    input.Body.Message,
		RevealDate: input.Body.RevealDate,
		ImageURL:   input.Body.ImageURL,
		IsPrivate:  input.Body.IsPrivate,
	})
	if err != nil {
		return nil, h.mapError(err, "Error updating capsule")
	}

	return &updateOutput{Body: toResponse(c)}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		return nil, h.mapError(err, "Error deleting capsule")
	}

	return &deleteOutput{Body: messageResponse{Message: "Capsule deleted successfully"}}, nil
}

// mapError translates domain errors into HTTP responses. Anything
// unexpected becomes a 500 with a generic message.
func (h *Handler) mapError(err error, fallback string) error {
	var verr *capsule.ValidationError

	switch {
	case errors.As(err, &verr):
		return huma.Error400BadRequest(verr.Reason)
	case errors.Is(err, capsule.ErrNotFound):
		return huma.Error404NotFound("Capsule not found")
	case errors.Is(err, capsule.ErrLocked):
		return huma.Error403Forbidden("Capsule is still locked")
	case errors.Is(err, capsule.ErrNotOwner):
		return huma.Error403Forbidden("Not authorized")
	default:
		return huma.Error500InternalServerError(fallback)
	}
}
