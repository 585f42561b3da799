package handlers

import (
	"net/http"

	"github.com/UjjwalCodes01/ai-social-media-platform/utils"
)

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
