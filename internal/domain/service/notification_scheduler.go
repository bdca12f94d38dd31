// Package service defines interfaces for external collaborators.
package service

import (
	"context"

	"paraquip/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthorizationStatus is the OS-level notification permission state.
type AuthorizationStatus string

const (
	// AuthorizationUnknown means the user has not been asked yet.
	AuthorizationUnknown AuthorizationStatus = "unknown"
	// AuthorizationGranted means notifications may be scheduled.
	AuthorizationGranted AuthorizationStatus = "granted"
	// AuthorizationDenied means the user rejected the permission prompt.
	AuthorizationDenied AuthorizationStatus = "denied"
)

// TapEvent is emitted when the user interacts with a delivered notification.
// Either EquipmentID is set (the notification itself was tapped) or
// OpenSettings is true (the settings link was tapped).
type TapEvent struct {
	EquipmentID  uuid.UUID
	OpenSettings bool
}

// NotificationScheduler is the platform collaborator that executes the
// schedule computed by the reminder engine. Implementations wrap whatever
// the platform offers for pre-scheduled local notifications.
type NotificationScheduler interface {
	// RequestAuthorization asks the user for permission to deliver
	// notifications. It may suspend for user interaction.
	RequestAuthorization(ctx context.Context) (AuthorizationStatus, error)

	// Add schedules a single notification. Failures affect only this
	// notification, never the rest of the batch.
	Add(ctx context.Context, notification *entity.Notification) error

	// Reset cancels every pending notification.
	Reset(ctx context.Context) error

	// SetBadge sets the application badge count.
	SetBadge(ctx context.Context, count int) error

	// AuthorizationEvents streams permission changes.
	AuthorizationEvents() <-chan AuthorizationStatus

	// TapEvents streams notification and settings-link taps.
	TapEvents() <-chan TapEvent
}
