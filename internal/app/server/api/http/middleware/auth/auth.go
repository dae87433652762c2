package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"futuremail/internal/domain/session"
)

// SessionCookie carries the opaque session token issued after the OAuth
// callback. API clients may send the same token as a bearer header instead.
const SessionCookie = "fm_session"

type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const (
	userIDKey contextKey = "userID"
	tokenKey  contextKey = "sessionToken"
)

// Middleware resolves the session token into a user id and stores both in
// the request context. Requests with no valid session are rejected with 401.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := readToken(ctx)
		if token == "" {
			a.unauthorized(ctx, "Not authenticated")
			return
		}

		userID, err := a.session.Validate(ctx.Context(), token)
		if err != nil {
			a.log.Debug("session validation failed", "error", err)
			a.unauthorized(ctx, "Not authenticated")
			return
		}

		newCtx := context.WithValue(ctx.Context(), userIDKey, userID)
		newCtx = context.WithValue(newCtx, tokenKey, token)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) unauthorized(ctx huma.Context, msg string) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")
	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"message": msg,
	}); err != nil {
		a.log.Error("failed to write 401 body", "error", err)
	}
}

func readToken(ctx huma.Context) string {
	if cookie, err := huma.ReadCookie(ctx, SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := ctx.Header("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// WithUserID injects an authenticated user id directly, used by handler tests.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID returns the authenticated user behind the request.
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetToken returns the raw session token, needed by logout.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}
