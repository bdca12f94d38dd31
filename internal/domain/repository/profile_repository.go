// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"paraquip/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when no file exists for the profile id.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrUnsupportedSchemaVersion is returned when a profile file carries a
	// schema version this build does not know. Loading that profile must
	// fail rather than fabricate or truncate data.
	ErrUnsupportedSchemaVersion = errors.New("unsupported profile schema version")
)

// ProfileRepository defines the interface for durable profile storage.
// Writes are atomic: a load never observes a partially written file.
type ProfileRepository interface {
	// Save durably writes the full profile keyed by its id.
	Save(ctx context.Context, profile *entity.Profile) error

	// Load reads the profile with the given id, migrating older on-disk
	// schemas to the current model.
	Load(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// Delete removes the stored profile.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns the ids of all stored profiles.
	List(ctx context.Context) ([]uuid.UUID, error)
}
