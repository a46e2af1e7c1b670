package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
)

// Service verifies the admin password and issues tokens. The menu
// itself is public; the only protected surface is catalog management,
// so there is a single admin identity configured through the
// environment rather than a user store.
type Service struct {
	passwordHash string
}

// NewService takes the bcrypt hash of the admin password
// (ADMIN_PASSWORD_HASH).
func NewService(passwordHash string) *Service {
	return &Service{passwordHash: passwordHash}
}

// LOGIN
func (s *Service) Login(password string) (string, error) {
	if s.passwordHash == "" {
		return "", errors.New("admin password not configured")
	}

	err := bcrypt.CompareHashAndPassword(
		[]byte(s.passwordHash),
		[]byte(password),
	)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	return GenerateToken("admin", "ADMIN")
}
