// Package notification provides an in-process implementation of the
// notification platform collaborator. Pending reminders are held in memory
// and fired by timers; delivery is a log line plus a tap-event loopback for
// the interactive binary.
package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"paraquip/config"
	"paraquip/internal/domain/entity"
	"paraquip/internal/domain/service"
	"paraquip/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const eventBuffer = 16

// LocalScheduler keeps the pending notification set in memory, keyed by the
// composite (equipmentId, ruleId) identity. Adding a notification with an
// identity that is already pending replaces it.
type LocalScheduler struct {
	logger    *slog.Logger
	authorize bool

	mu      sync.Mutex
	pending map[string]*pendingNotification
	badge   int
	status  service.AuthorizationStatus
	closed  bool

	authCh chan service.AuthorizationStatus
	tapCh  chan service.TapEvent
}

type pendingNotification struct {
	notification entity.Notification
	timer        *time.Timer
}

// Params holds dependencies for the local scheduler.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
}

// New creates the local scheduler and ties its teardown to the fx lifecycle.
func New(params Params) (*LocalScheduler, error) {
	s := &LocalScheduler{
		logger:    params.Logger,
		authorize: params.Cfg.Notifications.Authorization == "grant",
		pending:   make(map[string]*pendingNotification),
		status:    service.AuthorizationUnknown,
		authCh:    make(chan service.AuthorizationStatus, eventBuffer),
		tapCh:     make(chan service.TapEvent, eventBuffer),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			s.Close()

			return nil
		},
	})

	return s, nil
}

// NewScheduler exposes the concrete scheduler as the domain interface.
func NewScheduler(s *LocalScheduler) service.NotificationScheduler {
	return s
}

// RequestAuthorization resolves the permission prompt with the configured
// outcome and publishes the status change.
func (s *LocalScheduler) RequestAuthorization(ctx context.Context) (service.AuthorizationStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return service.AuthorizationUnknown, errors.New("scheduler is closed")
	}

	if s.authorize {
		s.status = service.AuthorizationGranted
	} else {
		s.status = service.AuthorizationDenied
	}

	s.publishStatusLocked()

	return s.status, nil
}

// Add schedules a single notification. The trigger date must lie in the future.
func (s *LocalScheduler) Add(ctx context.Context, notification *entity.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("scheduler is closed")
	}

	delay := time.Until(notification.Date)
	if delay <= 0 {
		return errors.Errorf("notification %s lies in the past", notification.Key())
	}

	key := notification.Key()
	if existing, ok := s.pending[key]; ok {
		existing.timer.Stop()
	}

	n := *notification
	s.pending[key] = &pendingNotification{
		notification: n,
		timer:        time.AfterFunc(delay, func() { s.deliver(n) }),
	}

	return nil
}

// Reset cancels every pending notification.
func (s *LocalScheduler) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, pending := range s.pending {
		pending.timer.Stop()
	}
	s.pending = make(map[string]*pendingNotification)

	return nil
}

// SetBadge stores the badge count.
func (s *LocalScheduler) SetBadge(ctx context.Context, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.badge = count

	return nil
}

// AuthorizationEvents streams permission changes.
func (s *LocalScheduler) AuthorizationEvents() <-chan service.AuthorizationStatus {
	return s.authCh
}

// TapEvents streams notification and settings-link taps.
func (s *LocalScheduler) TapEvents() <-chan service.TapEvent {
	return s.tapCh
}

// Pending returns a snapshot of the currently scheduled notifications.
func (s *LocalScheduler) Pending() []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Notification, 0, len(s.pending))
	for _, pending := range s.pending {
		out = append(out, pending.notification)
	}

	return out
}

// Badge returns the last badge count set by the engine.
func (s *LocalScheduler) Badge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.badge
}

// Tap simulates the user tapping the notification for the given equipment.
func (s *LocalScheduler) Tap(equipmentID uuid.UUID) {
	s.emitTap(service.TapEvent{EquipmentID: equipmentID})
}

// OpenSettings simulates the user tapping the notification settings link.
func (s *LocalScheduler) OpenSettings() {
	s.emitTap(service.TapEvent{OpenSettings: true})
}

// Close stops all timers and closes the event streams.
func (s *LocalScheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for _, pending := range s.pending {
		pending.timer.Stop()
	}
	s.pending = make(map[string]*pendingNotification)

	close(s.authCh)
	close(s.tapCh)
}

func (s *LocalScheduler) deliver(n entity.Notification) {
	s.mu.Lock()
	delete(s.pending, n.Key())
	closed := s.closed
	s.mu.Unlock()

	if closed {
		return
	}

	s.logger.Info("Notification delivered",
		slog.String("title", n.Title),
		slog.String("body", n.Body),
		slog.String("equipmentId", n.EquipmentID.String()))
}

func (s *LocalScheduler) publishStatusLocked() {
	select {
	case s.authCh <- s.status:
	default:
		s.logger.Warn("Dropping authorization event, subscriber not keeping up")
	}
}

func (s *LocalScheduler) emitTap(event service.TapEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	select {
	case s.tapCh <- event:
	default:
		s.logger.Warn("Dropping tap event, subscriber not keeping up")
	}
}
