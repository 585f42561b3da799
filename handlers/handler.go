package handlers

import (
	"github.com/UjjwalCodes01/ai-social-media-platform/database"
	"github.com/UjjwalCodes01/ai-social-media-platform/services"
)

type Handler struct {
	db         *database.Database
	scheduling *services.SchedulingService
	auth       *services.AuthService
	storage    *services.StorageService
	oauth      *services.OAuthService
	generator  services.Generator
}

func NewHandler(db *database.Database, scheduling *services.SchedulingService,
	auth *services.AuthService, storage *services.StorageService,
	oauth *services.OAuthService, generator services.Generator) *Handler {
	return &Handler{
		db:         db,
		scheduling: scheduling,
		auth:       auth,
		storage:    storage,
		oauth:      oauth,
		generator:  generator,
	}
}
