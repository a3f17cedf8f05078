package entity

import (
	"time"

	"github.com/google/uuid"
)

// IssuedToken is a signed, time-bounded proof of identity handed out at login.
// It is never persisted; possession until ExpiresAt is the authorization.
type IssuedToken struct {
	Token        string    // Encoded compact JWS.
	SubjectID    uuid.UUID // The user the token was issued for.
	SubjectEmail string
	IssuedAt     time.Time
	ExpiresAt    time.Time
}

// AuthContext is the identity bound to a single request after its token validated.
type AuthContext struct {
	SubjectID    uuid.UUID
	SubjectEmail string
}
