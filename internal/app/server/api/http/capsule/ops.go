package capsule

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "capsule-list",
		Method:      http.MethodGet,
		Path:        "/api/capsules",
		Summary:     "List the caller's capsules",
		Tags:        []string{"capsules"},
		Security:    []map[string][]string{{"session": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "capsule-create",
		Method:        http.MethodPost,
		Path:          "/api/capsules",
		Summary:       "Create a capsule",
		Tags:          []string{"capsules"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"session": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "capsule-get",
		Method:      http.MethodGet,
		Path:        "/api/capsules/{id}",
		Summary:     "View a capsule",
		Description: "Owners see their capsules at any time; everyone else only after the reveal date.",
		Tags:        []string{"capsules"},
		Security:    []map[string][]string{{"session": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "capsule-update",
		Method:      http.MethodPut,
		Path:        "/api/capsules/{id}",
		Summary:     "Update a capsule",
		Tags:        []string{"capsules"},
		Security:    []map[string][]string{{"session": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "capsule-delete",
		Method:      http.MethodDelete,
		Path:        "/api/capsules/{id}",
		Summary:     "Delete a capsule",
		Tags:        []string{"capsules"},
		Security:    []map[string][]string{{"session": {}}},
		Middlewares: h.middleware,
	}
}
