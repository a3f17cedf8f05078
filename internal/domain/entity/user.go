// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultStatus is the status every freshly registered account starts with.
const DefaultStatus = "I am new!"

// User is the stored credential record for one account.
// PasswordHash only ever holds PasswordHasher output and is never serialized.
type User struct {
	ID           uuid.UUID `json:"id"`     // Primary identifier, also the token subject.
	Email        string    `json:"email"`  // Unique, case-insensitive login identifier.
	Name         string    `json:"name"`   // Display name supplied at signup.
	PasswordHash string    `json:"-"`      // bcrypt hash of the password.
	Status       string    `json:"status"` // Free-form user state, mutable by the owner.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewUser builds an unsaved user with the default status.
func NewUser(email, name, passwordHash string) *User {
	return &User{
		Email:        NormalizeEmail(email),
		Name:         name,
		PasswordHash: passwordHash,
		Status:       DefaultStatus,
	}
}

// NormalizeEmail returns the canonical form used as the identity key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
