package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	mwauth "futuremail/internal/app/server/api/http/middleware/auth"
	"futuremail/internal/domain/session"
	"futuremail/internal/domain/user"
)

const stateCookie = "fm_oauth_state"

// Provider is the OAuth client behind the login and callback endpoints.
type Provider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (user.GoogleProfile, error)
}

type Handler struct {
	provider     Provider
	users        user.Servicer
	session      session.Servicer
	sessionTTL   time.Duration
	dashboardURL string
	log          *slog.Logger
	public       huma.Middlewares
	protected    huma.Middlewares
}

func NewHandler(provider Provider, users user.Servicer, sessions session.Servicer,
	sessionTTL time.Duration, dashboardURL string, log *slog.Logger,
	public, protected huma.Middlewares,
) *Handler {
	return &Handler{
		provider:     provider,
		users:        users,
		session:      sessions,
		sessionTTL:   sessionTTL,
		dashboardURL: dashboardURL,
		log:          log,
		public:       public,
		protected:    protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.callbackOp(), h.callback)
	huma.Register(api, h.userOp(), h.user)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.logoutOp(), h.logout)
}

// login starts the Google consent flow. The state nonce round-trips via a
// short-lived cookie.
func (h *Handler) login(_ context.Context, _ *struct{}) (*loginOutput, error) {
	state := uuid.NewString()

	return &loginOutput{
		Cookie: http.Cookie{
			Name:     stateCookie,
			Value:    state,
			Path:     "/",
			MaxAge:   600,
			HttpOnly: true,
		},
		URL: h.provider.AuthURL(state),
	}, nil
}

// callback finishes the code exchange, upserts the account, and issues the
// session cookie.
func (h *Handler) callback(ctx context.Context, input *callbackInput) (*callbackOutput, error) {
	if input.State == "" || input.State != input.StateCookie.Value {
		return nil, huma.Error401Unauthorized("Invalid OAuth state")
	}

	profile, err := h.provider.Exchange(ctx, input.Code)
	if err != nil {
		h.log.Error("oauth code exchange failed", "error", err)
		return nil, huma.Error401Unauthorized("Authentication failed")
	}

	u, err := h.users.UpsertFromGoogle(ctx, profile)
	if err != nil {
		h.log.Error("user upsert failed", "error", err)
		return nil, huma.Error500InternalServerError("Authentication failed")
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("session create failed", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError("Authentication failed")
	}

	return &callbackOutput{
		Cookies: []http.Cookie{
			{
				Name:     mwauth.SessionCookie,
				Value:    token,
				Path:     "/",
				MaxAge:   int(h.sessionTTL.Seconds()),
				HttpOnly: true,
			},
			{Name: stateCookie, Value: "", Path: "/", MaxAge: -1},
		},
		URL: h.dashboardURL,
	}, nil
}

func (h *Handler) user(ctx context.Context, _ *struct{}) (*userOutput, error) {
	userID, ok := mwauth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	u, err := h.users.Get(ctx, userID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Error fetching user")
	}

	return &userOutput{
		Body: UserResponse{Email: u.Email, Username: u.Username},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	userID, ok := mwauth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}

	if input.Body.Username == "" {
		return nil, huma.Error400BadRequest("Username is required")
	}

	u, err := h.users.UpdateUsername(ctx, userID, input.Body.Username)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUsername), errors.Is(err, user.ErrUsernameTaken):
			return nil, huma.Error400BadRequest(err.Error())
		default:
			return nil, huma.Error500InternalServerError("Server error")
		}
	}

	return &updateOutput{
		Body: UpdateResponse{
			Message: "Username updated successfully",
			User:    UserResponse{Email: u.Email, Username: u.Username},
		},
	}, nil
}

func (h *Handler) logout(ctx context.Context, _ *struct{}) (*logoutOutput, error) {
	if token, ok := mwauth.GetToken(ctx); ok {
		if err := h.session.Destroy(ctx, token); err != nil {
			h.log.Error("logout failed", "error", err)
		}
	}

	return &logoutOutput{
		Cookie: http.Cookie{Name: mwauth.SessionCookie, Value: "", Path: "/", MaxAge: -1},
		URL:    "/",
	}, nil
}
