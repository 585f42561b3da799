package services

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

const stateTTL = 10 * time.Minute

// OAuthState is the short-lived context carried across an OAuth
// redirect: who initiated the connect flow and for which platform.
type OAuthState struct {
	UserID    string
	Platform  string
	CreatedAt time.Time
}

// OAuthStateService issues and validates one-time state tokens for
// OAuth connect flows.
type OAuthStateService struct {
	mu     sync.Mutex
	states map[string]*OAuthState
}

func NewOAuthStateService() *OAuthStateService {
	s := &OAuthStateService{states: make(map[string]*OAuthState)}
	go s.cleanupLoop()
	return s
}

// GenerateState creates and stores a new random state token.
func (s *OAuthStateService) GenerateState(userID, platform string) string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	state := hex.EncodeToString(bytes)

	s.mu.Lock()
	s.states[state] = &OAuthState{
		UserID:    userID,
		Platform:  platform,
		CreatedAt: time.Now(),
	}
	s.mu.Unlock()

	return state
}

// ValidateState consumes a state token. Tokens are single-use and
// expire after ten minutes.
func (s *OAuthStateService) ValidateState(state string) (*OAuthState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	oauthState, exists := s.states[state]
	if !exists {
		return nil, false
	}

	delete(s.states, state)

	if time.Since(oauthState.CreatedAt) > stateTTL {
		return nil, false
	}

	return oauthState, true
}

func (s *OAuthStateService) cleanupLoop() {
	ticker := time.NewTicker(stateTTL)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		for state, oauthState := range s.states {
			if time.Since(oauthState.CreatedAt) > stateTTL {
				delete(s.states, state)
			}
		}
		s.mu.Unlock()
	}
}
