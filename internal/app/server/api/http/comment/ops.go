package comment

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "comment-list",
		Method:      http.MethodGet,
		Path:        "/api/comments/{id}",
		Summary:     "List comments on a capsule",
		Description: "Newest first.",
		Tags:        []string{"comments"},
		Security:    []map[string][]string{{"session": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "comment-create",
		Method:        http.MethodPost,
		Path:          "/api/comments/{id}",
		Summary:       "Add a comment",
		Tags:          []string{"comments"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"session": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "comment-delete",
		Method:      http.MethodDelete,
		Path:        "/api/comments/{id}",
		Summary:     "Delete a comment",
		Description: "Only the comment's author may delete it.",
		Tags:        []string{"comments"},
		Security:    []map[string][]string{{"session": {}}},
		Middlewares: h.middleware,
	}
}
