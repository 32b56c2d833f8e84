package service

import (
	"operkassa/internal/session"
)

// AuthService handles operator authentication against the shared password
type AuthService struct {
	sessions    *session.Store
	botPassword string
}

// NewAuthService creates a new auth service
func NewAuthService(sessions *session.Store, botPassword string) *AuthService {
	return &AuthService{
		sessions:    sessions,
		botPassword: botPassword,
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return password == s.botPassword
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) bool {
	return s.sessions.IsAuthorized(userID)
}

// Authorize marks a user as authorized
func (s *AuthService) Authorize(userID int64) {
	s.sessions.Authorize(userID)
}

// Revoke logs a user out
func (s *AuthService) Revoke(userID int64) {
	s.sessions.Revoke(userID)
}
