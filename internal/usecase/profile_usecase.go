package usecase

import (
	"context"
	"time"

	"paraquip/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase is the single owning store for the active profile. Every
// mutation goes through it, is persisted best-effort and wakes the reminder
// engine through the registered change listeners. It is also the engine's
// read path (repository.EquipmentSource).
type ProfileUsecase interface {
	// Profile returns a snapshot of the active profile.
	Profile(ctx context.Context) *entity.Profile

	// ListProfiles returns the ids of every profile stored on disk.
	ListProfiles(ctx context.Context) ([]uuid.UUID, error)

	// Rename changes the profile's display name.
	Rename(ctx context.Context, name string) error

	// StoreEquipment inserts the equipment or replaces the record with the
	// same id.
	StoreEquipment(ctx context.Context, equipment entity.Equipment) error

	// RemoveEquipment deletes the records at the given positions and
	// returns the removed ids.
	RemoveEquipment(ctx context.Context, positions ...int) ([]uuid.UUID, error)

	// LogCheck records a check dated date against the equipment.
	LogCheck(ctx context.Context, equipmentID uuid.UUID, date time.Time) error

	// RemoveChecks deletes the check log entries at the given positions.
	RemoveChecks(ctx context.Context, equipmentID uuid.UUID, positions ...int) error

	// OnChange registers a listener invoked after every successful mutation.
	OnChange(listener func())
}
