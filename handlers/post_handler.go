package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/UjjwalCodes01/ai-social-media-platform/middleware"
	"github.com/UjjwalCodes01/ai-social-media-platform/models"
	"github.com/UjjwalCodes01/ai-social-media-platform/utils"

	"github.com/gorilla/mux"
)

// GetPosts handles GET /api/posts.
func (h *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	posts, err := h.scheduling.ListPosts(userID)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, posts)
}

// GetPost handles GET /api/posts/{id}. The response includes the
// per-platform publish results, which is how a user finds out which
// targets of a failed or partially published post went wrong.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	postID := mux.Vars(r)["id"]

	post, err := h.scheduling.GetPost(postID, userID)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, post)
}

type directPublishRequest struct {
	Content   string            `json:"content"`
	Platforms []models.Platform `json:"platforms"`
	MediaURLs []string          `json:"mediaUrls,omitempty"`
	Tags      []string          `json:"tags,omitempty"`
}

// PublishDirect handles POST /api/social/publish: create and publish in
// one synchronous call, skipping the scheduler entirely.
func (h *Handler) PublishDirect(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req directPublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	post, err := h.scheduling.PublishDirect(userID, req.Content, req.Platforms, req.MediaURLs, req.Tags)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, models.PublishResponse{
		PostID:  post.ID,
		Status:  post.Status,
		Results: post.Results,
	})
}
