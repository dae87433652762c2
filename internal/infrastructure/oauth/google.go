package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/exp/slog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"futuremail/internal/domain/user"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Google drives the authorization-code flow against Google's OAuth 2.0
// endpoints: consent URL, code exchange, and the userinfo lookup that feeds
// the account upsert.
type Google struct {
	conf *oauth2.Config
	log  *slog.Logger
}

func NewGoogle(clientID, clientSecret, callbackURL string, log *slog.Logger) *Google {
	return &Google{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		log: log.With("component", "google_oauth"),
	}
}

// AuthURL returns the consent-screen URL carrying the anti-forgery state.
func (g *Google) AuthURL(state string) string {
	return g.conf.AuthCodeURL(state)
}

// Exchange trades the callback code for a token and resolves the profile
// behind it.
func (g *Google) Exchange(ctx context.Context, code string) (user.GoogleProfile, error) {
	token, err := g.conf.Exchange(ctx, code)
	if err != nil {
		return user.GoogleProfile{}, fmt.Errorf("exchange code: %w", err)
	}

	resp, err := g.conf.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return user.GoogleProfile{}, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return user.GoogleProfile{}, fmt.Errorf("fetch userinfo: status %d", resp.StatusCode)
	}

	var info struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return user.GoogleProfile{}, fmt.Errorf("decode userinfo: %w", err)
	}

	return user.GoogleProfile{
		ID:          info.ID,
		Email:       info.Email,
		Name:        info.Name,
		AccessToken: token.AccessToken,
	}, nil
}
