package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"workreg_backend/internal/config"

	"golang.org/x/oauth2"
)

// UserInfo is the profile returned by the provider's userinfo endpoint.
// Only OpenID is guaranteed; the rest is best effort.
type UserInfo struct {
	OpenID      string  `json:"open_id"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	LoginMethod *string `json:"login_method"`
}

// Provider wraps the OAuth code-exchange flow against the identity provider.
type Provider struct {
	oauth       *oauth2.Config
	userInfoURL string
}

func NewProvider(cfg *config.Config) *Provider {
	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			RedirectURL:  cfg.OAuth.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuth.AuthURL,
				TokenURL: cfg.OAuth.TokenURL,
			},
			Scopes: []string{"openid", "profile", "email"},
		},
		userInfoURL: cfg.OAuth.UserInfoURL,
	}
}

// AuthCodeURL builds the provider authorize URL carrying the CSRF state.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for a token and fetches the user's
// profile from the userinfo endpoint.
func (p *Provider) Exchange(ctx context.Context, code string) (*UserInfo, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth code exchange failed: %w", err)
	}

	client := p.oauth.Client(ctx, token)
	resp, err := client.Get(p.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	if info.OpenID == "" {
		return nil, fmt.Errorf("userinfo response missing open_id")
	}

	return &info, nil
}
