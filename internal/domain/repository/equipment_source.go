package repository

import (
	"context"
	"errors"

	"paraquip/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEquipmentNotFound is returned when an equipment id cannot be resolved.
var ErrEquipmentNotFound = errors.New("equipment not found")

// EquipmentSource is the read path of the reminder engine: it fetches the
// live equipment collection for reconciliation and resolves tapped
// notifications back to a record. The profile service implements it.
type EquipmentSource interface {
	// FetchAll returns a snapshot of every equipment record of the active profile.
	FetchAll(ctx context.Context) ([]entity.Equipment, error)

	// FetchByID resolves a single equipment record.
	FetchByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error)
}
