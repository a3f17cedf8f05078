// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"runtime"

	"authgate/config"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// DefaultBcryptCost keeps a single hash in the tens of milliseconds on commodity hardware.
const DefaultBcryptCost = 12

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost  int
	slots *semaphore.Weighted // bounds concurrent bcrypt work, the service's CPU backpressure point
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost, maxConcurrent := DefaultBcryptCost, 0
	if cfg != nil && cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
		maxConcurrent = cfg.Auth.MaxConcurrentHashes
	}

	return NewBcryptHasherWithCost(cost, maxConcurrent)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost and concurrency bound.
// An out-of-range cost falls back to DefaultBcryptCost; maxConcurrent <= 0 means GOMAXPROCS.
func NewBcryptHasherWithCost(cost, maxConcurrent int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	if maxConcurrent <= 0 {
		maxConcurrent = runtime.GOMAXPROCS(0)
	}

	return &bcryptHasher{
		cost:  cost,
		slots: semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return "", errors.Wrap(err, "wait for hashing slot")
	}
	defer h.slots.Release(1)

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WithCause(err)
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(ctx context.Context, password, hash string) (bool, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return false, errors.Wrap(err, "wait for hashing slot")
	}
	defer h.slots.Release(1)

	// err is nil only if the password and hash match; every failure mode reports false.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}
