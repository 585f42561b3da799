package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"
	"github.com/UjjwalCodes01/ai-social-media-platform/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.auth.Register(req)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, models.AuthResponse{Token: token, User: *user})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.auth.Login(req)
	if err != nil {
		// Do not leak which part of the credentials was wrong.
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.AuthResponse{Token: token, User: *user})
}
