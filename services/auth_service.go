package services

import (
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users  UserStore
	secret []byte
}

func NewAuthService(users UserStore, secret []byte) *AuthService {
	return &AuthService{users: users, secret: secret}
}

func (a *AuthService) Register(req models.RegisterRequest) (*models.User, error) {
	if req.Email == "" || req.Name == "" {
		return nil, models.NewValidationError("registration", "email and name are required")
	}
	if len(req.Password) < 8 {
		return nil, models.NewValidationError("password", "must be at least 8 characters")
	}

	existing, err := a.users.GetUserByEmail(req.Email)
	if err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}
	if existing != nil {
		return nil, models.NewValidationError("email", "already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Email:     req.Email,
		Password:  string(hashedPassword),
		Name:      req.Name,
		CreatedAt: time.Now(),
	}

	if err := a.users.CreateUser(user); err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}

	return user, nil
}

func (a *AuthService) Login(req models.LoginRequest) (*models.User, error) {
	user, err := a.users.GetUserByEmail(req.Email)
	if err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}
	if user == nil {
		return nil, models.NewValidationError("credentials", "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.NewValidationError("credentials", "invalid email or password")
	}

	return user, nil
}

func (a *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

func (a *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}
