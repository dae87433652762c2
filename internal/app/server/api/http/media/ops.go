package media

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) uploadOp() huma.Operation {
	return huma.Operation{
		OperationID:   "media-upload",
		Method:        http.MethodPost,
		Path:          "/api/media/{capsuleId}",
		Summary:       "Attach an image to a capsule",
		Description:   "Multipart upload; the file goes in the \"image\" field. A new upload replaces the previous one.",
		Tags:          []string{"media"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"session": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "media-get",
		Method:      http.MethodGet,
		Path:        "/api/media/{capsuleId}",
		Summary:     "Fetch a capsule's image",
		Description: "Responds with the raw bytes and the stored content type.",
		Tags:        []string{"media"},
		Security:    []map[string][]string{{"session": {}}},
		Middlewares: h.middleware,
	}
}
