package handlers

import (
	"errors"
	"net/http"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"
	"github.com/UjjwalCodes01/ai-social-media-platform/utils"
)

// respondError maps the service error taxonomy onto HTTP statuses.
// Validation and state errors are client mistakes (400), ownership and
// existence collapse into 404, and store failures are retryable 500s.
func respondError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	var notFoundErr *models.NotFoundError
	var stateErr *models.InvalidStateError
	var storeErr *models.StoreUnavailableError

	switch {
	case errors.As(err, &validationErr):
		utils.RespondWithError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &stateErr):
		utils.RespondWithError(w, http.StatusBadRequest, stateErr.Error())
	case errors.As(err, &notFoundErr):
		utils.RespondWithError(w, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &storeErr):
		utils.Errorf("Store unavailable: %v", storeErr.Err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage temporarily unavailable, please retry")
	default:
		utils.Errorf("Unhandled error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
