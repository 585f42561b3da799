package services

import (
	"context"
	"fmt"

	"github.com/UjjwalCodes01/ai-social-media-platform/config"
	"github.com/UjjwalCodes01/ai-social-media-platform/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/linkedin"
)

// OAuthService holds the oauth2 app configurations for the platforms
// that support a browser connect flow. Platforms without a config here
// (twitter, instagram) take tokens through the manual credentials
// endpoint instead.
type OAuthService struct {
	configs map[models.Platform]*oauth2.Config
	states  *OAuthStateService
}

func NewOAuthService(cfg *config.Config, states *OAuthStateService) *OAuthService {
	callback := func(platform string) string {
		return fmt.Sprintf("%s/connect/%s/callback", cfg.BaseURL, platform)
	}

	return &OAuthService{
		states: states,
		configs: map[models.Platform]*oauth2.Config{
			models.Facebook: {
				ClientID:     cfg.FacebookAppID,
				ClientSecret: cfg.FacebookAppSecret,
				RedirectURL:  callback("facebook"),
				Scopes:       []string{"pages_manage_posts", "pages_read_engagement"},
				Endpoint:     facebook.Endpoint,
			},
			models.LinkedIn: {
				ClientID:     cfg.LinkedInClientID,
				ClientSecret: cfg.LinkedInClientSecret,
				RedirectURL:  callback("linkedin"),
				Scopes:       []string{"openid", "profile", "w_member_social"},
				Endpoint:     linkedin.Endpoint,
			},
		},
	}
}

// Supported reports whether the platform has a connect flow.
func (s *OAuthService) Supported(platform models.Platform) bool {
	_, ok := s.configs[platform]
	return ok
}

// AuthURL returns the platform's consent page URL carrying a one-time
// state token bound to the initiating user.
func (s *OAuthService) AuthURL(userID string, platform models.Platform) (string, error) {
	cfg, ok := s.configs[platform]
	if !ok {
		return "", models.NewValidationError("platform", "connect flow not supported for "+string(platform))
	}

	state := s.states.GenerateState(userID, string(platform))
	return cfg.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// Exchange validates the returned state and swaps the authorization
// code for a token. Returns the state (identifying user and platform)
// along with the token.
func (s *OAuthService) Exchange(ctx context.Context, state, code string) (*OAuthState, *oauth2.Token, error) {
	oauthState, ok := s.states.ValidateState(state)
	if !ok {
		return nil, nil, models.NewValidationError("state", "invalid or expired state token")
	}

	cfg, configured := s.configs[models.Platform(oauthState.Platform)]
	if !configured {
		return nil, nil, models.NewValidationError("platform", "connect flow not supported for "+oauthState.Platform)
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("code exchange failed: %w", err)
	}

	return oauthState, token, nil
}
