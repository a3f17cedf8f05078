package service

import (
	"time"

	"authgate/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is how long an issued token stays valid unless configured otherwise.
const DefaultTokenTTL = time.Hour

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed identity tokens.
type TokenService interface {
	// Issue signs a token for the subject that expires after ttl.
	Issue(subjectID uuid.UUID, subjectEmail string, ttl time.Duration) (*entity.IssuedToken, error)

	// Validate verifies the signature before reading any claim and returns the identity.
	// Failures are ErrTokenMalformed, ErrTokenInvalidSignature or ErrTokenExpired.
	Validate(token string) (*entity.AuthContext, error)

	// TTL returns the configured lifetime for issued tokens.
	TTL() time.Duration
}
