package usecase

import (
	"context"

	"paraquip/internal/domain/entity"
)

// NavigationEvent asks the UI to navigate somewhere in response to a
// notification interaction: either to a specific equipment record or to the
// notification settings.
type NavigationEvent struct {
	Settings  bool
	Equipment *entity.Equipment
}

// NotificationUsecase is the reminder engine: it owns the notification
// state, reconciles the scheduled notification set against the live
// equipment collection and drives the application badge.
type NotificationUsecase interface {
	// State returns a snapshot of the engine state.
	State() entity.NotificationState

	// Enable requests notification authorization and, when granted, turns
	// the engine on. A denial records the rejection instead.
	Enable(ctx context.Context) error

	// Disable turns the engine off, clearing everything scheduled.
	Disable(ctx context.Context) error

	// AddConfig appends a new rule with the default offset of one month.
	AddConfig(ctx context.Context) error

	// RemoveConfigs deletes the rules at the given positions.
	RemoveConfigs(ctx context.Context, positions ...int) error

	// UpdateConfig replaces the rule with a matching id; unknown ids are a
	// no-op.
	UpdateConfig(ctx context.Context, config entity.NotificationConfig) error

	// Reschedule requests a reconciliation pass. Requests within the
	// coalescing window collapse into a single pass over the latest state.
	Reschedule()

	// ReconcileNow runs a reconciliation pass synchronously.
	ReconcileNow(ctx context.Context) error

	// Navigation streams navigation requests resolved from notification taps.
	Navigation() <-chan NavigationEvent

	// Close stops the engine's event loop and any pending debounce.
	Close() error
}
