package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"
	"github.com/UjjwalCodes01/ai-social-media-platform/services"

	"github.com/gorilla/mux"
)

func authedRouter(auth *services.AuthService) (*mux.Router, *string) {
	var seenUserID string

	r := mux.NewRouter()
	r.Use(AuthMiddleware(auth))
	r.HandleFunc("/whoami", func(w http.ResponseWriter, req *http.Request) {
		seenUserID = UserID(req.Context())
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	return r, &seenUserID
}

func TestAuthMiddleware(t *testing.T) {
	auth := services.NewAuthService(nil, []byte("test-secret"))
	router, seenUserID := authedRouter(auth)

	token, err := auth.GenerateToken(&models.User{ID: "u1", Email: "dev@example.com"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"malformed header", "Bearer", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}

	if *seenUserID != "u1" {
		t.Errorf("handler saw user %q, want u1", *seenUserID)
	}
}

func TestAuthMiddlewareRejectsForeignSignature(t *testing.T) {
	auth := services.NewAuthService(nil, []byte("test-secret"))
	other := services.NewAuthService(nil, []byte("other-secret"))
	router, _ := authedRouter(auth)

	token, _ := other.GenerateToken(&models.User{ID: "u1", Email: "dev@example.com"})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for a token signed with another key", rec.Code)
	}
}

func TestUserIDMissing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if id := UserID(req.Context()); id != "" {
		t.Errorf("UserID on bare context = %q, want empty", id)
	}
}
