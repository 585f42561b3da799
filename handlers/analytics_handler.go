package handlers

import (
	"net/http"

	"github.com/UjjwalCodes01/ai-social-media-platform/middleware"
	"github.com/UjjwalCodes01/ai-social-media-platform/models"
	"github.com/UjjwalCodes01/ai-social-media-platform/utils"
)

// GetAnalyticsSummary handles GET /api/analytics/summary.
func (h *Handler) GetAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	summary, err := h.db.GetAnalyticsSummary(userID)
	if err != nil {
		respondError(w, models.NewStoreUnavailableError(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, summary)
}
