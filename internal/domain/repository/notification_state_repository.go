package repository

import (
	"context"
	"errors"

	"paraquip/internal/domain/entity"
)

// ErrStateNotFound is returned when no notification state has been persisted yet.
var ErrStateNotFound = errors.New("notification state not found")

// NotificationStateRepository stores the reminder engine's state: the master
// switch, the rejected-permission flag and the rule list.
type NotificationStateRepository interface {
	// Save durably writes the state.
	Save(ctx context.Context, state entity.NotificationState) error

	// Load reads the persisted state. A first run yields ErrStateNotFound
	// and the caller falls back to entity.DefaultNotificationState.
	Load(ctx context.Context) (entity.NotificationState, error)
}
