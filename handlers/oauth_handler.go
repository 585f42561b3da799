package handlers

import (
	"fmt"
	"html"
	"net/http"
	"net/url"
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/middleware"
	"github.com/UjjwalCodes01/ai-social-media-platform/models"
	"github.com/UjjwalCodes01/ai-social-media-platform/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// InitiateConnect handles GET /api/connect/{platform}: returns the
// platform's consent URL for the frontend to open in a popup.
func (h *Handler) InitiateConnect(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	platform := models.Platform(mux.Vars(r)["platform"])

	if !models.IsValidPlatform(platform) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown platform")
		return
	}

	authURL, err := h.oauth.AuthURL(userID, platform)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"auth_url": authURL})
}

// ConnectCallback handles GET /connect/{platform}/callback: the
// platform redirects here with code and state after user consent.
func (h *Handler) ConnectCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if errParam := query.Get("error"); errParam != "" {
		h.redirectOAuthError(w, r, errParam, query.Get("error_description"))
		return
	}

	state, code := query.Get("state"), query.Get("code")
	if state == "" || code == "" {
		h.redirectOAuthError(w, r, "invalid_request", "missing state or code")
		return
	}

	oauthState, token, err := h.oauth.Exchange(r.Context(), state, code)
	if err != nil {
		utils.Warnf("OAuth exchange failed: %v", err)
		h.redirectOAuthError(w, r, "exchange_failed", err.Error())
		return
	}

	encrypted, err := utils.EncryptToken(token.AccessToken)
	if err != nil {
		h.redirectOAuthError(w, r, "internal_error", "failed to protect token")
		return
	}

	now := time.Now()
	cred := &models.PlatformCredentials{
		ID:           uuid.New().String(),
		UserID:       oauthState.UserID,
		Platform:     models.Platform(oauthState.Platform),
		AccessToken:  encrypted,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if !token.Expiry.IsZero() {
		cred.ExpiresAt = &token.Expiry
	}

	if err := h.db.SaveCredentials(cred); err != nil {
		utils.Errorf("Failed to save credentials for %s: %v", oauthState.Platform, err)
		h.redirectOAuthError(w, r, "storage_failed", "could not save credentials")
		return
	}

	http.Redirect(w, r, "/oauth/success?platform="+url.QueryEscape(oauthState.Platform), http.StatusFound)
}

func (h *Handler) redirectOAuthError(w http.ResponseWriter, r *http.Request, errType, description string) {
	http.Redirect(w, r, fmt.Sprintf("/oauth/error?error=%s&description=%s",
		url.QueryEscape(errType), url.QueryEscape(description)), http.StatusFound)
}

// OAuthSuccessPage renders the popup-closing page shown after a
// successful connect flow.
func (h *Handler) OAuthSuccessPage(w http.ResponseWriter, r *http.Request) {
	platform := r.URL.Query().Get("platform")
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>Connected</title></head>
<body>
	<h1>Successfully connected</h1>
	<p>Your %s account has been connected. You can close this window.</p>
	<script>
		if (window.opener) {
			window.opener.postMessage({type: 'oauth_success', platform: %q}, '*');
			setTimeout(() => window.close(), 3000);
		}
	</script>
</body>
</html>`, html.EscapeString(platform), platform)
}

// OAuthErrorPage renders the failure page for the connect popup.
func (h *Handler) OAuthErrorPage(w http.ResponseWriter, r *http.Request) {
	errType := r.URL.Query().Get("error")
	description := r.URL.Query().Get("description")
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>Connection failed</title></head>
<body>
	<h1>Connection failed</h1>
	<p><strong>Error:</strong> %s</p>
	<p><strong>Details:</strong> %s</p>
	<script>setTimeout(() => window.close(), 5000);</script>
</body>
</html>`, html.EscapeString(errType), html.EscapeString(description))
}
