package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/UjjwalCodes01/ai-social-media-platform/utils"
)

type generateRequest struct {
	Prompt string `json:"prompt"`
	Tone   string `json:"tone,omitempty"`
}

type generateResponse struct {
	Content string `json:"content"`
}

// GenerateContent handles POST /api/ai/generate: produce post copy from
// a prompt via the configured text-generation backend.
func (h *Handler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.Prompt == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	content, err := h.generator.Generate(r.Context(), req.Prompt, req.Tone)
	if err != nil {
		utils.Errorf("Content generation failed: %v", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Content generation failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, generateResponse{Content: content})
}
