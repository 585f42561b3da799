package handlers

import (
	"net/http"

	"github.com/UjjwalCodes01/ai-social-media-platform/middleware"
	"github.com/UjjwalCodes01/ai-social-media-platform/models"
	"github.com/UjjwalCodes01/ai-social-media-platform/utils"

	"github.com/gorilla/mux"
)

// UploadMedia handles POST /api/media (multipart form, field "file").
func (h *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing file in request")
		return
	}
	defer file.Close()

	media, err := h.storage.SaveFile(file, header, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.db.CreateMedia(media); err != nil {
		h.storage.DeleteFile(media)
		respondError(w, models.NewStoreUnavailableError(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, models.UploadResponse{Media: media})
}

// GetMedia handles GET /api/media.
func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	mediaList, err := h.db.GetUserMedia(userID)
	if err != nil {
		respondError(w, models.NewStoreUnavailableError(err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, mediaList)
}

// DeleteMedia handles DELETE /api/media/{id}.
func (h *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	mediaID := mux.Vars(r)["id"]

	media, err := h.db.GetMedia(mediaID)
	if err != nil {
		respondError(w, models.NewStoreUnavailableError(err))
		return
	}
	if media == nil || media.UserID != userID {
		respondError(w, models.NewNotFoundError("media", mediaID))
		return
	}

	if err := h.db.DeleteMedia(mediaID); err != nil {
		respondError(w, models.NewStoreUnavailableError(err))
		return
	}
	if err := h.storage.DeleteFile(media); err != nil {
		utils.Warnf("Failed to remove media file %s: %v", media.Path, err)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Media deleted"})
}
