package jwt

import (
	"time"
)

// Service signs and validates write tokens with one shared secret
type Service struct {
	secretKey []byte
	expiry    time.Duration
}

// NewService creates a new JWT service
func NewService(secretKey string, expiry time.Duration) *Service {
	if expiry == 0 {
		expiry = 24 * time.Hour // Default to 24 hours
	}

	return &Service{
		secretKey: []byte(secretKey),
		expiry:    expiry,
	}
}

// GenerateToken issues a token for subject with the given scopes
func (s *Service) GenerateToken(subject string, scopes ...string) (string, error) {
	return generateToken(s.secretKey, subject, s.expiry, scopes...)
}

// ValidateToken validates a JWT token and returns the claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return validateToken(s.secretKey, tokenString)
}

// Authorize validates the token and checks it grants scope
func (s *Service) Authorize(tokenString, scope string) (*Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if !claims.HasScope(scope) {
		return claims, ErrMissingScope
	}
	return claims, nil
}
