package media

import (
	"context"
	"errors"
	"io"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"futuremail/internal/app/server/api/http/middleware/auth"
	"futuremail/internal/domain/media"
)

type Handler struct {
	service    media.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service media.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.uploadOp(), h.upload)
	huma.Register(api, h.getOp(), h.get)
}

func (h *Handler) upload(ctx context.Context, input *uploadInput) (*uploadOutput, error) {
	if _, ok := auth.GetUserID(ctx); !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	form := input.RawBody.Data()
	if !form.Image.IsSet {
		return nil, huma.Error400BadRequest("No file uploaded")
	}

	data, err := io.ReadAll(form.Image.File)
	if err != nil {
		h.log.Error("failed to read uploaded file", "capsule_id", input.CapsuleID, "error", err)
		return nil, huma.Error500InternalServerError("Error reading upload")
	}

	id, err := h.service.Upload(ctx, input.CapsuleID, data, form.Image.ContentType)
	if err != nil {
		if errors.Is(err, media.ErrNoFile) {
			return nil, huma.Error400BadRequest("No file uploaded")
		}
		return nil, huma.Error500InternalServerError("Error saving media")
	}

	return &uploadOutput{Body: uploadResponse{ID: id, Message: "Media uploaded successfully"}}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	if _, ok := auth.GetUserID(ctx); !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	m, err := h.service.GetByCapsule(ctx, input.CapsuleID)
	if err != nil {
		if errors.Is(err, media.ErrNotFound) {
			return nil, huma.Error404NotFound("No media found")
		}
		return nil, huma.Error500InternalServerError("Error fetching media")
	}

	return &getOutput{ContentType: m.ContentType, Body: m.Data}, nil
}
