package services

import (
	"errors"
	"testing"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"
)

func TestRegisterAndLogin(t *testing.T) {
	store := newMemStore()
	auth := NewAuthService(store, []byte("test-secret"))

	user, err := auth.Register(models.RegisterRequest{
		Email:    "dev@example.com",
		Password: "correct-horse",
		Name:     "Dev",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Password == "correct-horse" {
		t.Error("password stored in plaintext")
	}

	logged, err := auth.Login(models.LoginRequest{Email: "dev@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("logged in as %s, want %s", logged.ID, user.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	store := newMemStore()
	auth := NewAuthService(store, []byte("test-secret"))

	cases := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"missing email", models.RegisterRequest{Password: "longenough", Name: "Dev"}},
		{"missing name", models.RegisterRequest{Email: "a@b.c", Password: "longenough"}},
		{"short password", models.RegisterRequest{Email: "a@b.c", Password: "short", Name: "Dev"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Register(tc.req)
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newMemStore()
	auth := NewAuthService(store, []byte("test-secret"))

	req := models.RegisterRequest{Email: "dup@example.com", Password: "longenough", Name: "Dev"}
	if _, err := auth.Register(req); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := auth.Register(req)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for duplicate email, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := newMemStore()
	auth := NewAuthService(store, []byte("test-secret"))

	auth.Register(models.RegisterRequest{Email: "dev@example.com", Password: "correct-horse", Name: "Dev"})

	_, err := auth.Login(models.LoginRequest{Email: "dev@example.com", Password: "battery-staple"})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// Unknown email fails with the same error, so callers can't probe
	// which addresses are registered.
	_, err2 := auth.Login(models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	if err2 == nil || err2.Error() != err.Error() {
		t.Errorf("unknown email error %v differs from wrong password error %v", err2, err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	store := newMemStore()
	auth := NewAuthService(store, []byte("test-secret"))

	user := &models.User{ID: "u1", Email: "dev@example.com"}
	token, err := auth.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "dev@example.com" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	store := newMemStore()
	auth := NewAuthService(store, []byte("test-secret"))
	other := NewAuthService(store, []byte("other-secret"))

	token, _ := auth.GenerateToken(&models.User{ID: "u1", Email: "dev@example.com"})

	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with a different signing key")
	}
}
