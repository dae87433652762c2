package auth

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-login",
		Method:        http.MethodGet,
		Path:          "/api/auth/login",
		Summary:       "Begin the Google OAuth flow",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusFound,
		Middlewares:   h.public,
	}
}

func (h *Handler) callbackOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-callback",
		Method:        http.MethodGet,
		Path:          "/api/auth/callback",
		Summary:       "OAuth redirect target",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusFound,
		Middlewares:   h.public,
	}
}

func (h *Handler) userOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-user",
		Method:      http.MethodGet,
		Path:        "/api/auth/user",
		Summary:     "Current identity",
		Tags:        []string{"auth"},
		Security:    []map[string][]string{{"session": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-update",
		Method:      http.MethodPut,
		Path:        "/api/auth/update",
		Summary:     "Change username",
		Tags:        []string{"auth"},
		Security:    []map[string][]string{{"session": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-logout",
		Method:        http.MethodGet,
		Path:          "/api/auth/logout",
		Summary:       "End session",
		Tags:          []string{"auth"},
		Security:      []map[string][]string{{"session": {}}},
		DefaultStatus: http.StatusFound,
		Middlewares:   h.protected,
	}
}
