package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/middleware"
	"github.com/UjjwalCodes01/ai-social-media-platform/models"
	"github.com/UjjwalCodes01/ai-social-media-platform/utils"

	"github.com/google/uuid"
)

type saveCredentialsRequest struct {
	Platform     models.Platform `json:"platform"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	ExpiresAt    *time.Time      `json:"expires_at,omitempty"`
}

// SaveCredentials handles POST /api/credentials: manual token entry for
// platforms without a browser connect flow. Tokens are encrypted at
// rest.
func (h *Handler) SaveCredentials(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req saveCredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !models.IsValidPlatform(req.Platform) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown platform")
		return
	}
	if req.AccessToken == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "access_token is required")
		return
	}

	encrypted, err := utils.EncryptToken(req.AccessToken)
	if err != nil {
		respondError(w, err)
		return
	}

	now := time.Now()
	cred := &models.PlatformCredentials{
		ID:           uuid.New().String(),
		UserID:       userID,
		Platform:     req.Platform,
		AccessToken:  encrypted,
		RefreshToken: req.RefreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    req.ExpiresAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.db.SaveCredentials(cred); err != nil {
		respondError(w, models.NewStoreUnavailableError(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Credentials saved successfully"})
}

// GetConnectedPlatforms handles GET /api/credentials/status.
func (h *Handler) GetConnectedPlatforms(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	connected, err := h.db.GetConnectedPlatforms(userID)
	if err != nil {
		respondError(w, models.NewStoreUnavailableError(err))
		return
	}

	status := map[models.Platform]bool{}
	for _, p := range models.AllPlatforms {
		status[p] = false
	}
	for _, p := range connected {
		status[p] = true
	}

	utils.RespondWithJSON(w, http.StatusOK, status)
}

// DisconnectPlatform handles DELETE /api/credentials/disconnect?platform=x.
func (h *Handler) DisconnectPlatform(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	platform := models.Platform(r.URL.Query().Get("platform"))
	if !models.IsValidPlatform(platform) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown platform")
		return
	}

	if err := h.db.DeleteCredentials(userID, platform); err != nil {
		respondError(w, models.NewStoreUnavailableError(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Platform disconnected"})
}
