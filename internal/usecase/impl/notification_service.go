package impl

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"time"

	"paraquip/config"
	"paraquip/internal/domain/entity"
	"paraquip/internal/domain/repository"
	"paraquip/internal/domain/service"
	"paraquip/internal/pkg/i18n"
	"paraquip/internal/usecase"
)

// ErrInvalidNotificationConfig is returned when a rule update carries an
// unknown unit or a negative multiplier.
var ErrInvalidNotificationConfig = errors.New("invalid notification config")

const navigationBuffer = 4

// notificationService is the reminder engine. It owns the notification
// state; every state or equipment change funnels into a debounced
// reconciliation pass that rebuilds the scheduled notification set from
// scratch and recomputes the badge.
type notificationService struct {
	stateRepo  repository.NotificationStateRepository
	source     repository.EquipmentSource
	scheduler  service.NotificationScheduler
	translator *i18n.Translator
	logger     *slog.Logger

	locale      string
	triggerHour int
	soonWindow  time.Duration
	debounce    time.Duration
	now         func() time.Time

	mu            sync.Mutex
	state         entity.NotificationState
	debounceTimer *time.Timer
	closed        bool

	navCh chan usecase.NavigationEvent
	done  chan struct{}
	wg    sync.WaitGroup
}

// NewNotificationService loads the persisted engine state (falling back to
// the default state on a first run or a broken file) and starts the event
// loop consuming authorization and tap events.
func NewNotificationService(
	cfg *config.Config,
	logger *slog.Logger,
	stateRepo repository.NotificationStateRepository,
	source repository.EquipmentSource,
	scheduler service.NotificationScheduler,
	translator *i18n.Translator,
) usecase.NotificationUsecase {
	s := &notificationService{
		stateRepo:   stateRepo,
		source:      source,
		scheduler:   scheduler,
		translator:  translator,
		logger:      logger,
		locale:      cfg.Locale,
		triggerHour: cfg.Notifications.TriggerHour,
		soonWindow:  time.Duration(cfg.Notifications.SoonWindowDays) * 24 * time.Hour,
		debounce:    cfg.Notifications.Debounce,
		now:         time.Now,
		navCh:       make(chan usecase.NavigationEvent, navigationBuffer),
		done:        make(chan struct{}),
	}

	s.state = s.loadState()

	s.wg.Add(1)
	go s.run()

	return s
}

func (s *notificationService) loadState() entity.NotificationState {
	state, err := s.stateRepo.Load(context.Background())
	switch {
	case err == nil:
		return state
	case errors.Is(err, repository.ErrStateNotFound):
		return entity.DefaultNotificationState()
	default:
		s.logger.Error("Failed to load notification state, using defaults", slog.Any("error", err))

		return entity.DefaultNotificationState()
	}
}

// State returns a snapshot of the engine state.
func (s *notificationService) State() entity.NotificationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// Enable asks for notification authorization and turns the engine on when
// the user grants it. A denial is recorded in WasRequestRejected; the
// authorization event stream handles forced disabling.
func (s *notificationService) Enable(ctx context.Context) error {
	status, err := s.scheduler.RequestAuthorization(ctx)
	if err != nil {
		s.logger.Error("Failed to enable notifications", slog.Any("error", err))

		return err
	}

	if status == service.AuthorizationGranted {
		s.setState(ctx, func(state *entity.NotificationState) {
			state.IsEnabled = true
		})
	} else {
		s.setState(ctx, func(state *entity.NotificationState) {
			state.WasRequestRejected = true
		})
	}

	return nil
}

// Disable turns the engine off. The next reconciliation pass clears
// everything scheduled but still recomputes the badge.
func (s *notificationService) Disable(ctx context.Context) error {
	s.setState(ctx, func(state *entity.NotificationState) {
		state.IsEnabled = false
	})

	return nil
}

// AddConfig appends the default one-month rule.
func (s *notificationService) AddConfig(ctx context.Context) error {
	s.setState(ctx, func(state *entity.NotificationState) {
		state.Configuration = append(state.Configuration, entity.NewNotificationConfig())
	})

	return nil
}

// RemoveConfigs deletes the rules at the given positions.
func (s *notificationService) RemoveConfigs(ctx context.Context, positions ...int) error {
	s.setState(ctx, func(state *entity.NotificationState) {
		for _, i := range sortedDescending(positions) {
			if i < 0 || i >= len(state.Configuration) {
				continue
			}
			state.Configuration = append(state.Configuration[:i], state.Configuration[i+1:]...)
		}
	})

	return nil
}

// UpdateConfig replaces the rule with a matching id. Unknown ids are a no-op.
func (s *notificationService) UpdateConfig(ctx context.Context, config entity.NotificationConfig) error {
	if config.Multiplier < 0 || (config.Unit != entity.UnitDays && config.Unit != entity.UnitMonths) {
		return ErrInvalidNotificationConfig
	}

	s.setState(ctx, func(state *entity.NotificationState) {
		for i := range state.Configuration {
			if state.Configuration[i].ID == config.ID {
				state.Configuration[i] = config

				return
			}
		}
	})

	return nil
}

// Reschedule coalesces rapid successive triggers into one reconciliation
// pass over the most recent state.
func (s *notificationService) Reschedule() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	s.debounceTimer = time.AfterFunc(s.debounce, func() {
		if err := s.ReconcileNow(context.Background()); err != nil {
			s.logger.Error("Reconciliation failed", slog.Any("error", err))
		}
	})
}

// ReconcileNow runs one full reconciliation pass: clear everything, schedule
// the desired set when enabled, and recompute the badge unconditionally.
func (s *notificationService) ReconcileNow(ctx context.Context) error {
	now := s.now()

	s.mu.Lock()
	state := s.state.Clone()
	s.mu.Unlock()

	if err := s.scheduler.Reset(ctx); err != nil {
		return err
	}

	equipment, err := s.source.FetchAll(ctx)
	if err != nil {
		return err
	}

	if state.IsEnabled {
		s.logger.Info("Updating notifications", slog.Int("equipment", len(equipment)))
		for _, eq := range equipment {
			for _, cfg := range state.Configuration {
				s.scheduleNotification(ctx, eq, cfg, now)
			}
		}
	}

	// The badge reflects current urgency regardless of the master switch.
	badge := 0
	for _, eq := range equipment {
		if eq.Urgency(now, s.soonWindow) == entity.UrgencyNow {
			badge++
		}
	}

	if err := s.scheduler.SetBadge(ctx, badge); err != nil {
		s.logger.Error("Failed to set badge count", slog.Any("error", err))
	} else {
		s.logger.Info("Set badge count", slog.Int("count", badge))
	}

	return nil
}

func (s *notificationService) scheduleNotification(ctx context.Context, eq entity.Equipment, cfg entity.NotificationConfig, now time.Time) {
	next, ok := eq.NextCheckDate(now)
	if !ok {
		s.logger.Info("Skipping notifications for equipment since check is off",
			slog.String("equipmentId", eq.ID.String()))

		return
	}

	trigger := cfg.Offset(atHour(next, s.triggerHour))
	if !trigger.After(now) {
		s.logger.Info("Ignoring notification config because it lies in the past",
			slog.String("config", cfg.String()))

		return
	}

	notification := &entity.Notification{
		EquipmentID: eq.ID,
		ConfigID:    cfg.ID,
		Title:       s.translator.Translate(s.locale, "notification_check_due_title", nil),
		Body: s.translator.Translate(s.locale, cfg.BodyLocalizationKey(), map[string]string{
			"brand": eq.Brand,
			"name":  eq.Name,
			"count": strconv.Itoa(cfg.Multiplier),
		}),
		Date: trigger,
	}

	if err := s.scheduler.Add(ctx, notification); err != nil {
		// A single failed add degrades to one missing reminder, never to an
		// aborted batch.
		s.logger.Error("Failed to add notification",
			slog.String("key", notification.Key()),
			slog.Any("error", err))
	}
}

// Navigation streams navigation requests resolved from notification taps.
func (s *notificationService) Navigation() <-chan usecase.NavigationEvent {
	return s.navCh
}

// Close stops the event loop and any pending debounce.
func (s *notificationService) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return nil
	}
	s.closed = true
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	s.mu.Unlock()

	close(s.done)
	s.wg.Wait()
	close(s.navCh)

	return nil
}

// run is the engine's event loop. Authorization and tap events are consumed
// here so no two completions interleave a state mutation.
func (s *notificationService) run() {
	defer s.wg.Done()

	authCh := s.scheduler.AuthorizationEvents()
	tapCh := s.scheduler.TapEvents()

	for {
		select {
		case <-s.done:
			return
		case status, ok := <-authCh:
			if !ok {
				authCh = nil

				continue
			}
			s.handleAuthorizationStatus(status)
		case event, ok := <-tapCh:
			if !ok {
				tapCh = nil

				continue
			}
			s.handleTap(event)
		}
	}
}

func (s *notificationService) handleAuthorizationStatus(status service.AuthorizationStatus) {
	s.logger.Info("Authorization status updated", slog.String("status", string(status)))

	if status == service.AuthorizationDenied {
		s.setState(context.Background(), func(state *entity.NotificationState) {
			state.IsEnabled = false
			state.WasRequestRejected = true
		})
	} else {
		s.setState(context.Background(), func(state *entity.NotificationState) {
			state.WasRequestRejected = false
		})
	}
}

func (s *notificationService) handleTap(event service.TapEvent) {
	if event.OpenSettings {
		s.logger.Info("Handling open settings")
		s.emitNavigation(usecase.NavigationEvent{Settings: true})

		return
	}

	s.logger.Info("Handling notification tap",
		slog.String("equipmentId", event.EquipmentID.String()))

	eq, err := s.source.FetchByID(context.Background(), event.EquipmentID)
	if err != nil {
		s.logger.Error("Unable to fetch equipment for tapped notification",
			slog.String("equipmentId", event.EquipmentID.String()),
			slog.Any("error", err))

		return
	}

	s.emitNavigation(usecase.NavigationEvent{Equipment: eq})
}

func (s *notificationService) emitNavigation(event usecase.NavigationEvent) {
	select {
	case s.navCh <- event:
	default:
		s.logger.Warn("Dropping navigation event, subscriber not keeping up")
	}
}

// setState applies the mutation, persists the new state best-effort and
// requests rescheduling. Every state transition triggers both side effects.
func (s *notificationService) setState(ctx context.Context, mutate func(*entity.NotificationState)) {
	s.mu.Lock()
	mutate(&s.state)
	snapshot := s.state.Clone()
	s.mu.Unlock()

	if err := s.stateRepo.Save(ctx, snapshot); err != nil {
		s.logger.Error("Failed to persist notification state", slog.Any("error", err))
	}

	s.Reschedule()
}

// atHour normalizes the date's time of day to the given hour before offsets
// are applied, so reminders fire at a stable local time.
func atHour(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}

// sortedDescending copies and sorts positions high to low so earlier
// removals do not shift the later ones.
func sortedDescending(positions []int) []int {
	out := make([]int, len(positions))
	copy(out, positions)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out
}
