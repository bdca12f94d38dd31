package impl

import (
	"context"
	"testing"
	"time"

	"paraquip/config"
	"paraquip/internal/domain/entity"
	"paraquip/internal/domain/repository"
	"paraquip/internal/domain/service"
	mockRepo "paraquip/internal/mocks/repository"
	mockSvc "paraquip/internal/mocks/service"
	"paraquip/internal/pkg/i18n"
	"paraquip/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

type notificationServiceFixture struct {
	svc       usecase.NotificationUsecase
	stateRepo *mockRepo.MockNotificationStateRepository
	source    *mockRepo.MockEquipmentSource
	scheduler *mockSvc.MockNotificationScheduler
	authCh    chan service.AuthorizationStatus
	tapCh     chan service.TapEvent
}

func createTestNotificationService(t *testing.T, state entity.NotificationState, loadErr error) *notificationServiceFixture {
	t.Helper()

	stateRepo := mockRepo.NewMockNotificationStateRepository(t)
	source := mockRepo.NewMockEquipmentSource(t)
	scheduler := mockSvc.NewMockNotificationScheduler(t)

	authCh := make(chan service.AuthorizationStatus)
	tapCh := make(chan service.TapEvent)

	stateRepo.EXPECT().Load(mock.Anything).Return(state, loadErr).Once()
	scheduler.EXPECT().AuthorizationEvents().Return(authCh).Once()
	scheduler.EXPECT().TapEvents().Return(tapCh).Once()

	cfg := &config.Config{}
	cfg.Locale = "en"
	cfg.Notifications.TriggerHour = 9
	cfg.Notifications.SoonWindowDays = 30
	// Keep the debounce timer from firing mid-test; reconciliation is
	// always driven explicitly through ReconcileNow.
	cfg.Notifications.Debounce = time.Hour

	translator, err := i18n.New()
	require.NoError(t, err)

	svc := NewNotificationService(cfg, testLogger(), stateRepo, source, scheduler, translator)
	svc.(*notificationService).now = func() time.Time { return testNow }

	t.Cleanup(func() { _ = svc.Close() })

	return &notificationServiceFixture{
		svc:       svc,
		stateRepo: stateRepo,
		source:    source,
		scheduler: scheduler,
		authCh:    authCh,
		tapCh:     tapCh,
	}
}

func enabledState(cfgs ...entity.NotificationConfig) entity.NotificationState {
	if len(cfgs) == 0 {
		cfgs = []entity.NotificationConfig{{ID: uuid.New(), Unit: entity.UnitMonths, Multiplier: 1}}
	}

	return entity.NotificationState{IsEnabled: true, Configuration: cfgs}
}

func TestReconcileNow_SchedulesFutureReminders(t *testing.T) {
	monthRule := entity.NotificationConfig{ID: uuid.New(), Unit: entity.UnitMonths, Multiplier: 1}
	dayRule := entity.NotificationConfig{ID: uuid.New(), Unit: entity.UnitDays, Multiplier: 10}
	f := createTestNotificationService(t, enabledState(monthRule, dayRule), nil)

	wing := entity.Equipment{
		ID:         uuid.New(),
		Kind:       entity.KindParaglider,
		Brand:      "Gin",
		Name:       "Explorer",
		CheckCycle: 6,
		CheckLog:   []entity.Check{entity.NewCheck(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC))},
	}
	harness := entity.Equipment{ID: uuid.New(), Kind: entity.KindHarness, Brand: "Woody Valley", Name: "GTO", CheckCycle: 0}

	f.scheduler.EXPECT().Reset(mock.Anything).Return(nil).Once()
	f.source.EXPECT().FetchAll(mock.Anything).Return([]entity.Equipment{wing, harness}, nil).Once()

	var added []entity.Notification
	f.scheduler.EXPECT().Add(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, notification *entity.Notification) {
			added = append(added, *notification)
		}).
		Return(nil).
		Times(2)
	f.scheduler.EXPECT().SetBadge(mock.Anything, 0).Return(nil).Once()

	require.NoError(t, f.svc.ReconcileNow(context.Background()))

	// Next check is Sep 1; the harness has checking turned off and gets nothing.
	require.Len(t, added, 2)
	assert.Equal(t, wing.ID, added[0].EquipmentID)
	assert.Equal(t, monthRule.ID, added[0].ConfigID)
	assert.Equal(t, time.Date(2023, 8, 1, 9, 0, 0, 0, time.UTC), added[0].Date)
	assert.Equal(t, "Check due", added[0].Title)
	assert.Equal(t, "Your Gin Explorer is due for a check in one month", added[0].Body)

	assert.Equal(t, dayRule.ID, added[1].ConfigID)
	assert.Equal(t, time.Date(2023, 8, 22, 9, 0, 0, 0, time.UTC), added[1].Date)
	assert.Equal(t, "Your Gin Explorer is due for a check in 10 days", added[1].Body)
}

func TestReconcileNow_SkipsTriggersInThePast(t *testing.T) {
	f := createTestNotificationService(t, enabledState(), nil)

	// Checked 40 days ago on a one month cycle: the due date and the one
	// month reminder both lie in the past, so nothing is scheduled, but the
	// overdue equipment still counts towards the badge.
	overdue := entity.Equipment{
		ID:         uuid.New(),
		Kind:       entity.KindParaglider,
		Brand:      "Advance",
		Name:       "Iota",
		CheckCycle: 1,
		CheckLog:   []entity.Check{entity.NewCheck(testNow.AddDate(0, 0, -40))},
	}

	f.scheduler.EXPECT().Reset(mock.Anything).Return(nil).Once()
	f.source.EXPECT().FetchAll(mock.Anything).Return([]entity.Equipment{overdue}, nil).Once()
	f.scheduler.EXPECT().SetBadge(mock.Anything, 1).Return(nil).Once()

	require.NoError(t, f.svc.ReconcileNow(context.Background()))
}

func TestReconcileNow_EmptyLogCountsTowardsBadge(t *testing.T) {
	f := createTestNotificationService(t, enabledState(), nil)

	// Never checked means due immediately; every reminder offset from "now
	// at the trigger hour" lies in the past and is skipped.
	fresh := entity.Equipment{ID: uuid.New(), Kind: entity.KindReserve, Brand: "Companion", Name: "SQR", CheckCycle: 6}

	f.scheduler.EXPECT().Reset(mock.Anything).Return(nil).Once()
	f.source.EXPECT().FetchAll(mock.Anything).Return([]entity.Equipment{fresh}, nil).Once()
	f.scheduler.EXPECT().SetBadge(mock.Anything, 1).Return(nil).Once()

	require.NoError(t, f.svc.ReconcileNow(context.Background()))
}

func TestReconcileNow_DisabledStillMaintainsBadge(t *testing.T) {
	f := createTestNotificationService(t, entity.DefaultNotificationState(), nil)

	overdue := entity.Equipment{
		ID:         uuid.New(),
		Kind:       entity.KindParaglider,
		Brand:      "Gin",
		Name:       "Explorer",
		CheckCycle: 1,
		CheckLog:   []entity.Check{entity.NewCheck(testNow.AddDate(-1, 0, 0))},
	}

	f.scheduler.EXPECT().Reset(mock.Anything).Return(nil).Once()
	f.source.EXPECT().FetchAll(mock.Anything).Return([]entity.Equipment{overdue}, nil).Once()
	f.scheduler.EXPECT().SetBadge(mock.Anything, 1).Return(nil).Once()

	require.NoError(t, f.svc.ReconcileNow(context.Background()))
}

func TestReconcileNow_IsIdempotent(t *testing.T) {
	f := createTestNotificationService(t, enabledState(), nil)

	wing := entity.Equipment{
		ID:         uuid.New(),
		Kind:       entity.KindParaglider,
		Brand:      "Gin",
		Name:       "Explorer",
		CheckCycle: 12,
		CheckLog:   []entity.Check{entity.NewCheck(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))},
	}

	f.scheduler.EXPECT().Reset(mock.Anything).Return(nil).Times(2)
	f.source.EXPECT().FetchAll(mock.Anything).Return([]entity.Equipment{wing}, nil).Times(2)

	var added []entity.Notification
	f.scheduler.EXPECT().Add(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, notification *entity.Notification) {
			added = append(added, *notification)
		}).
		Return(nil).
		Times(2)
	f.scheduler.EXPECT().SetBadge(mock.Anything, 0).Return(nil).Times(2)

	ctx := context.Background()
	require.NoError(t, f.svc.ReconcileNow(ctx))
	require.NoError(t, f.svc.ReconcileNow(ctx))

	require.Len(t, added, 2)
	assert.Equal(t, added[0], added[1])
}

func TestReconcileNow_AddFailureDoesNotAbortBatch(t *testing.T) {
	f := createTestNotificationService(t, enabledState(), nil)

	makeWing := func(name string) entity.Equipment {
		return entity.Equipment{
			ID:         uuid.New(),
			Kind:       entity.KindParaglider,
			Brand:      "Gin",
			Name:       name,
			CheckCycle: 12,
			CheckLog:   []entity.Check{entity.NewCheck(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))},
		}
	}

	f.scheduler.EXPECT().Reset(mock.Anything).Return(nil).Once()
	f.source.EXPECT().FetchAll(mock.Anything).Return([]entity.Equipment{makeWing("One"), makeWing("Two")}, nil).Once()
	f.scheduler.EXPECT().Add(mock.Anything, mock.Anything).Return(assert.AnError).Once()
	f.scheduler.EXPECT().Add(mock.Anything, mock.Anything).Return(nil).Once()
	f.scheduler.EXPECT().SetBadge(mock.Anything, 0).Return(nil).Once()

	assert.NoError(t, f.svc.ReconcileNow(context.Background()))
}

func TestReconcileNow_PropagatesResetFailure(t *testing.T) {
	f := createTestNotificationService(t, enabledState(), nil)

	f.scheduler.EXPECT().Reset(mock.Anything).Return(assert.AnError).Once()

	assert.ErrorIs(t, f.svc.ReconcileNow(context.Background()), assert.AnError)
}

func TestEnable_GrantedTurnsEngineOn(t *testing.T) {
	f := createTestNotificationService(t, entity.DefaultNotificationState(), nil)

	f.scheduler.EXPECT().RequestAuthorization(mock.Anything).Return(service.AuthorizationGranted, nil).Once()
	f.stateRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, f.svc.Enable(context.Background()))

	state := f.svc.State()
	assert.True(t, state.IsEnabled)
	assert.False(t, state.WasRequestRejected)
}

func TestEnable_DenialRecordsRejection(t *testing.T) {
	f := createTestNotificationService(t, entity.DefaultNotificationState(), nil)

	f.scheduler.EXPECT().RequestAuthorization(mock.Anything).Return(service.AuthorizationDenied, nil).Once()
	f.stateRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, f.svc.Enable(context.Background()))

	state := f.svc.State()
	assert.False(t, state.IsEnabled)
	assert.True(t, state.WasRequestRejected)
}

func TestDisable(t *testing.T) {
	f := createTestNotificationService(t, enabledState(), nil)

	f.stateRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, f.svc.Disable(context.Background()))
	assert.False(t, f.svc.State().IsEnabled)
}

func TestAuthorizationRevocation_ForcesDisable(t *testing.T) {
	f := createTestNotificationService(t, enabledState(), nil)

	f.stateRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	f.authCh <- service.AuthorizationDenied

	require.Eventually(t, func() bool {
		state := f.svc.State()

		return !state.IsEnabled && state.WasRequestRejected
	}, time.Second, 10*time.Millisecond)
}

func TestAuthorizationGrant_ClearsRejection(t *testing.T) {
	state := enabledState()
	state.WasRequestRejected = true
	f := createTestNotificationService(t, state, nil)

	f.stateRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	f.authCh <- service.AuthorizationGranted

	require.Eventually(t, func() bool {
		current := f.svc.State()

		return current.IsEnabled && !current.WasRequestRejected
	}, time.Second, 10*time.Millisecond)
}

func TestTap_EmitsEquipmentNavigation(t *testing.T) {
	f := createTestNotificationService(t, enabledState(), nil)

	eq := entity.Equipment{ID: uuid.New(), Kind: entity.KindParaglider, Brand: "Gin", Name: "Explorer", CheckCycle: 12}
	f.source.EXPECT().FetchByID(mock.Anything, eq.ID).Return(&eq, nil).Once()

	f.tapCh <- service.TapEvent{EquipmentID: eq.ID}

	select {
	case event := <-f.svc.Navigation():
		assert.False(t, event.Settings)
		require.NotNil(t, event.Equipment)
		assert.Equal(t, eq.ID, event.Equipment.ID)
	case <-time.After(time.Second):
		t.Fatal("no navigation event emitted")
	}
}

func TestTap_OpenSettings(t *testing.T) {
	f := createTestNotificationService(t, enabledState(), nil)

	f.tapCh <- service.TapEvent{OpenSettings: true}

	select {
	case event := <-f.svc.Navigation():
		assert.True(t, event.Settings)
		assert.Nil(t, event.Equipment)
	case <-time.After(time.Second):
		t.Fatal("no navigation event emitted")
	}
}

func TestTap_UnknownEquipmentIsDropped(t *testing.T) {
	f := createTestNotificationService(t, enabledState(), nil)

	f.source.EXPECT().FetchByID(mock.Anything, mock.Anything).Return(nil, repository.ErrEquipmentNotFound).Once()

	f.tapCh <- service.TapEvent{EquipmentID: uuid.New()}
	f.tapCh <- service.TapEvent{OpenSettings: true}

	// The settings tap is the first event that makes it through, proving
	// the unresolvable tap produced nothing.
	select {
	case event := <-f.svc.Navigation():
		assert.True(t, event.Settings)
	case <-time.After(time.Second):
		t.Fatal("no navigation event emitted")
	}
}

func TestAddConfig_AppendsDefaultRule(t *testing.T) {
	f := createTestNotificationService(t, entity.DefaultNotificationState(), nil)

	f.stateRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, f.svc.AddConfig(context.Background()))

	state := f.svc.State()
	require.Len(t, state.Configuration, 2)
	assert.Equal(t, entity.UnitMonths, state.Configuration[1].Unit)
	assert.Equal(t, 1, state.Configuration[1].Multiplier)
}

func TestRemoveConfigs(t *testing.T) {
	first := entity.NotificationConfig{ID: uuid.New(), Unit: entity.UnitMonths, Multiplier: 1}
	second := entity.NotificationConfig{ID: uuid.New(), Unit: entity.UnitDays, Multiplier: 7}
	third := entity.NotificationConfig{ID: uuid.New(), Unit: entity.UnitDays, Multiplier: 1}
	f := createTestNotificationService(t, enabledState(first, second, third), nil)

	f.stateRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, f.svc.RemoveConfigs(context.Background(), 0, 2))

	state := f.svc.State()
	require.Len(t, state.Configuration, 1)
	assert.Equal(t, second.ID, state.Configuration[0].ID)
}

func TestUpdateConfig(t *testing.T) {
	rule := entity.NotificationConfig{ID: uuid.New(), Unit: entity.UnitMonths, Multiplier: 1}
	f := createTestNotificationService(t, enabledState(rule), nil)

	f.stateRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	rule.Unit = entity.UnitDays
	rule.Multiplier = 14
	require.NoError(t, f.svc.UpdateConfig(context.Background(), rule))

	state := f.svc.State()
	require.Len(t, state.Configuration, 1)
	assert.Equal(t, entity.UnitDays, state.Configuration[0].Unit)
	assert.Equal(t, 14, state.Configuration[0].Multiplier)

	// Unknown ids are accepted and change nothing.
	unknown := entity.NotificationConfig{ID: uuid.New(), Unit: entity.UnitDays, Multiplier: 3}
	require.NoError(t, f.svc.UpdateConfig(context.Background(), unknown))
	assert.Len(t, f.svc.State().Configuration, 1)
}

func TestUpdateConfig_RejectsInvalidRules(t *testing.T) {
	f := createTestNotificationService(t, enabledState(), nil)

	err := f.svc.UpdateConfig(context.Background(), entity.NotificationConfig{ID: uuid.New(), Unit: "weeks", Multiplier: 1})
	assert.ErrorIs(t, err, ErrInvalidNotificationConfig)

	err = f.svc.UpdateConfig(context.Background(), entity.NotificationConfig{ID: uuid.New(), Unit: entity.UnitDays, Multiplier: -1})
	assert.ErrorIs(t, err, ErrInvalidNotificationConfig)
}

func TestNewNotificationService_FallsBackToDefaultState(t *testing.T) {
	tests := []struct {
		name    string
		loadErr error
	}{
		{"first run", repository.ErrStateNotFound},
		{"broken state file", assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestNotificationService(t, entity.NotificationState{}, tt.loadErr)

			state := f.svc.State()
			assert.False(t, state.IsEnabled)
			require.Len(t, state.Configuration, 1)
			assert.Equal(t, entity.UnitMonths, state.Configuration[0].Unit)
			assert.Equal(t, 1, state.Configuration[0].Multiplier)
		})
	}
}

func TestClose_ShutsDownNavigationStream(t *testing.T) {
	f := createTestNotificationService(t, enabledState(), nil)

	require.NoError(t, f.svc.Close())

	_, open := <-f.svc.Navigation()
	assert.False(t, open)

	// Closing twice is safe.
	assert.NoError(t, f.svc.Close())
}
