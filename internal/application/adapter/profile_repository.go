// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
)

// ProfileRepository defines the interface for profile persistence operations.
type ProfileRepository interface {
	// Create creates a new profile. Returns ErrEmailAlreadyExists when the
	// email is already taken.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves a profile by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByEmail retrieves a profile by its email, the login lookup key.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// List retrieves all profiles.
	List(ctx context.Context) ([]*entity.Profile, error)

	// Save persists the full replacement state of an existing profile.
	Save(ctx context.Context, profile *entity.Profile) error
}
