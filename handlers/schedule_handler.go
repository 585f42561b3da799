package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/middleware"
	"github.com/UjjwalCodes01/ai-social-media-platform/models"
	"github.com/UjjwalCodes01/ai-social-media-platform/services"
	"github.com/UjjwalCodes01/ai-social-media-platform/utils"

	"github.com/gorilla/mux"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type scheduleRequest struct {
	Content       string            `json:"content"`
	Platform      models.Platform   `json:"platform,omitempty"`
	Platforms     []models.Platform `json:"platforms,omitempty"`
	ScheduledDate string            `json:"scheduledDate,omitempty"`
	ScheduledTime string            `json:"scheduledTime,omitempty"`
	MediaURLs     []string          `json:"mediaUrls,omitempty"`
	Tags          []string          `json:"tags,omitempty"`
}

// platformList merges the single-platform and multi-platform request
// shapes into one list.
func (req *scheduleRequest) platformList() []models.Platform {
	platforms := req.Platforms
	if req.Platform != "" {
		platforms = append(platforms, req.Platform)
	}
	return platforms
}

// parseScheduleAt combines the date and time fields into an instant in
// the server's local zone. Both fields empty means "no schedule"
// (a draft); providing only one of them is rejected.
func parseScheduleAt(dateStr, timeStr string) (*time.Time, error) {
	if dateStr == "" && timeStr == "" {
		return nil, nil
	}
	if dateStr == "" || timeStr == "" {
		return nil, models.NewValidationError("schedule", "scheduledDate and scheduledTime must be provided together")
	}

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, models.NewValidationError("scheduledDate", "must be an ISO date (YYYY-MM-DD)")
	}

	clock, err := time.Parse(timeLayout, timeStr)
	if err != nil {
		return nil, models.NewValidationError("scheduledTime", "must be HH:MM")
	}

	at := time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.Local)
	return &at, nil
}

// CreateScheduledPost handles POST /api/schedule/posts.
func (h *Handler) CreateScheduledPost(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	scheduledAt, err := parseScheduleAt(req.ScheduledDate, req.ScheduledTime)
	if err != nil {
		respondError(w, err)
		return
	}

	post, err := h.scheduling.CreateScheduled(userID, req.Content, req.platformList(),
		req.MediaURLs, req.Tags, scheduledAt)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, post)
}

// UpdateScheduledPost handles PUT /api/schedule/posts/{id}. All fields
// are optional; omitted ones are left unchanged.
func (h *Handler) UpdateScheduledPost(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	postID := mux.Vars(r)["id"]

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	scheduledAt, err := parseScheduleAt(req.ScheduledDate, req.ScheduledTime)
	if err != nil {
		respondError(w, err)
		return
	}

	patch := services.PostPatch{
		Platforms:   req.platformList(),
		MediaURLs:   req.MediaURLs,
		Tags:        req.Tags,
		ScheduledAt: scheduledAt,
	}
	if req.Content != "" {
		patch.Content = &req.Content
	}

	post, err := h.scheduling.UpdateScheduled(postID, userID, patch)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, post)
}

// DeleteScheduledPost handles DELETE /api/schedule/posts/{id}.
func (h *Handler) DeleteScheduledPost(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	postID := mux.Vars(r)["id"]

	if err := h.scheduling.DeleteScheduled(postID, userID); err != nil {
		respondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}

// GetUpcomingPosts handles GET /api/schedule/upcoming.
func (h *Handler) GetUpcomingPosts(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	posts, err := h.scheduling.Upcoming(userID)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, posts)
}

// PublishNow handles POST /api/schedule/posts/{id}/publish-now.
func (h *Handler) PublishNow(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	postID := mux.Vars(r)["id"]

	post, err := h.scheduling.PublishNow(postID, userID)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.PublishResponse{
		PostID:  post.ID,
		Status:  post.Status,
		Results: post.Results,
	})
}
