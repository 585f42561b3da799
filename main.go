package main

import (
	"net/http"

	"github.com/UjjwalCodes01/ai-social-media-platform/config"
	"github.com/UjjwalCodes01/ai-social-media-platform/database"
	"github.com/UjjwalCodes01/ai-social-media-platform/handlers"
	"github.com/UjjwalCodes01/ai-social-media-platform/middleware"
	"github.com/UjjwalCodes01/ai-social-media-platform/publishers"
	"github.com/UjjwalCodes01/ai-social-media-platform/services"
	"github.com/UjjwalCodes01/ai-social-media-platform/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	godotenv.Load()

	cfg := config.Load()

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		utils.Errorf("Failed to connect to database: %v", err)
		return
	}

	storage, err := services.NewStorageService(cfg.UploadDir, cfg.BaseURL, cfg.MaxImageSize, cfg.MaxVideoSize)
	if err != nil {
		utils.Errorf("Failed to initialize storage: %v", err)
		return
	}

	authService := services.NewAuthService(db, cfg.JWTSecret)
	publisher := services.NewPublisherService(db, db, publishers.All(), cfg.PublishTimeout)
	scheduling := services.NewSchedulingService(db, publisher)
	oauthStates := services.NewOAuthStateService()
	oauthService := services.NewOAuthService(cfg, oauthStates)
	generator := services.NewAIService(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)

	scheduler := services.NewScheduler(db, publisher, cfg.ScanInterval)
	scheduler.Start()
	defer scheduler.Stop()

	handler := handlers.NewHandler(db, scheduling, authService, storage, oauthService, generator)

	r := setupRoutes(handler, authService, cfg)

	utils.Infof("Server starting on port %s...", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		utils.Errorf("Server stopped: %v", err)
	}
}

func setupRoutes(h *handlers.Handler, authService *services.AuthService, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()

	limiter := middleware.NewRateLimiter(10, 30)
	r.Use(limiter.Middleware())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1 MB default; uploads override

	// Public routes
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/api/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.Login).Methods("POST")

	// OAuth redirect targets (no JWT: the browser arrives here from the
	// platform's consent screen; the state token carries the identity).
	r.HandleFunc("/connect/{platform}/callback", h.ConnectCallback).Methods("GET")
	r.HandleFunc("/oauth/success", h.OAuthSuccessPage).Methods("GET")
	r.HandleFunc("/oauth/error", h.OAuthErrorPage).Methods("GET")

	// Static file serving for uploaded media
	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(cfg.UploadDir))))

	// Protected routes
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(middleware.AuthMiddleware(authService))

	// Platform connections
	protected.HandleFunc("/connect/{platform}", h.InitiateConnect).Methods("GET")
	protected.HandleFunc("/credentials", h.SaveCredentials).Methods("POST")
	protected.HandleFunc("/credentials/status", h.GetConnectedPlatforms).Methods("GET")
	protected.HandleFunc("/credentials/disconnect", h.DisconnectPlatform).Methods("DELETE")

	// Scheduling
	protected.HandleFunc("/schedule/posts", h.CreateScheduledPost).Methods("POST")
	protected.HandleFunc("/schedule/posts/{id}", h.UpdateScheduledPost).Methods("PUT")
	protected.HandleFunc("/schedule/posts/{id}", h.DeleteScheduledPost).Methods("DELETE")
	protected.HandleFunc("/schedule/posts/{id}/publish-now", h.PublishNow).Methods("POST")
	protected.HandleFunc("/schedule/upcoming", h.GetUpcomingPosts).Methods("GET")

	// Immediate publishing
	protected.HandleFunc("/social/publish", h.PublishDirect).Methods("POST")

	// Posts
	protected.HandleFunc("/posts", h.GetPosts).Methods("GET")
	protected.HandleFunc("/posts/{id}", h.GetPost).Methods("GET")

	// Media library
	protected.HandleFunc("/media", middleware.BodyLimitHandler(cfg.MaxVideoSize+(1<<20), h.UploadMedia)).Methods("POST")
	protected.HandleFunc("/media", h.GetMedia).Methods("GET")
	protected.HandleFunc("/media/{id}", h.DeleteMedia).Methods("DELETE")

	// AI generation
	protected.HandleFunc("/ai/generate", h.GenerateContent).Methods("POST")

	// Analytics
	protected.HandleFunc("/analytics/summary", h.GetAnalyticsSummary).Methods("GET")

	return r
}
