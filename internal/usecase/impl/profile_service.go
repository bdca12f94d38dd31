package impl

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"paraquip/config"
	"paraquip/internal/domain/entity"
	"paraquip/internal/domain/repository"
	"paraquip/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrEquipmentNotFound is returned when an equipment id is not part of
	// the active profile.
	ErrEquipmentNotFound = errors.New("equipment not found")
	// ErrInvalidEquipment is returned when an equipment record fails validation.
	ErrInvalidEquipment = errors.New("invalid equipment")
)

// profileService owns the active profile. All mutation is serialized through
// its mutex; persistence failures are logged and never surface to the caller
// as anything but a log line.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger

	mu        sync.Mutex
	profile   *entity.Profile
	listeners []func()
}

// NewProfileService loads the configured profile, creating a fresh one when
// nothing is stored yet. A profile file with an unsupported schema version
// fails the load instead of being replaced with defaults.
func NewProfileService(
	cfg *config.Config,
	logger *slog.Logger,
	profileRepo repository.ProfileRepository,
) (usecase.ProfileUsecase, error) {
	s := &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}

	profile, err := s.loadOrCreate(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	s.profile = profile

	return s, nil
}

func (s *profileService) loadOrCreate(ctx context.Context, cfg *config.Config) (*entity.Profile, error) {
	name := cfg.Profile.Name
	if name == "" {
		name = "Paraquip"
	}

	if cfg.Profile.ID == "" {
		return s.createProfile(ctx, name, uuid.Nil), nil
	}

	id, err := uuid.Parse(cfg.Profile.ID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.Load(ctx, id)
	switch {
	case err == nil:
		s.logger.Info("Loaded profile",
			slog.String("profileId", profile.ID.String()),
			slog.Int("equipment", len(profile.Equipment)))

		return profile, nil
	case errors.Is(err, repository.ErrProfileNotFound):
		return s.createProfile(ctx, name, id), nil
	default:
		// Unsupported schema versions and decode failures abort the load;
		// fabricating an empty profile would shadow the user's data.
		return nil, err
	}
}

func (s *profileService) createProfile(ctx context.Context, name string, id uuid.UUID) *entity.Profile {
	profile := entity.NewProfile(name)
	if id != uuid.Nil {
		profile.ID = id
	}

	s.logger.Info("Created profile",
		slog.String("profileId", profile.ID.String()),
		slog.String("name", name))

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		s.logger.Error("Failed to persist new profile", slog.Any("error", err))
	}

	return profile
}

// Profile returns a snapshot of the active profile.
func (s *profileService) Profile(ctx context.Context) *entity.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.profile.Clone()
}

// ListProfiles returns the ids of every stored profile.
func (s *profileService) ListProfiles(ctx context.Context) ([]uuid.UUID, error) {
	return s.profileRepo.List(ctx)
}

// Rename changes the profile's display name.
func (s *profileService) Rename(ctx context.Context, name string) error {
	return s.mutate(ctx, func(profile *entity.Profile) error {
		profile.Name = name

		return nil
	})
}

// StoreEquipment inserts or replaces the equipment record.
func (s *profileService) StoreEquipment(ctx context.Context, equipment entity.Equipment) error {
	if !equipment.Kind.Valid() || equipment.CheckCycle < 0 {
		return ErrInvalidEquipment
	}
	if equipment.ID == uuid.Nil {
		equipment.ID = uuid.New()
	}

	return s.mutate(ctx, func(profile *entity.Profile) error {
		profile.StoreEquipment(equipment)

		return nil
	})
}

// RemoveEquipment deletes the records at the given positions. The engine's
// next reconciliation pass cancels anything scheduled for the removed ids.
func (s *profileService) RemoveEquipment(ctx context.Context, positions ...int) ([]uuid.UUID, error) {
	var removed []uuid.UUID
	err := s.mutate(ctx, func(profile *entity.Profile) error {
		removed = profile.RemoveEquipment(positions...)

		return nil
	})

	return removed, err
}

// LogCheck appends a check dated date to the equipment's log.
func (s *profileService) LogCheck(ctx context.Context, equipmentID uuid.UUID, date time.Time) error {
	return s.mutate(ctx, func(profile *entity.Profile) error {
		if !profile.LogCheck(equipmentID, date) {
			return ErrEquipmentNotFound
		}

		return nil
	})
}

// RemoveChecks deletes the check log entries at the given positions.
func (s *profileService) RemoveChecks(ctx context.Context, equipmentID uuid.UUID, positions ...int) error {
	return s.mutate(ctx, func(profile *entity.Profile) error {
		if !profile.RemoveChecks(equipmentID, positions...) {
			return ErrEquipmentNotFound
		}

		return nil
	})
}

// OnChange registers a mutation listener.
func (s *profileService) OnChange(listener func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, listener)
}

// FetchAll returns a snapshot of the profile's equipment for reconciliation.
func (s *profileService) FetchAll(ctx context.Context) ([]entity.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.profile.Clone().Equipment, nil
}

// FetchByID resolves a tapped notification back to an equipment record.
func (s *profileService) FetchByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eq := s.profile.Clone().EquipmentByID(id)
	if eq == nil {
		return nil, repository.ErrEquipmentNotFound
	}

	return eq, nil
}

// mutate applies fn under the store lock, persists the result best-effort
// and notifies the change listeners. Persistence failures never roll back
// the in-memory state.
func (s *profileService) mutate(ctx context.Context, fn func(*entity.Profile) error) error {
	s.mu.Lock()
	if err := fn(s.profile); err != nil {
		s.mu.Unlock()

		return err
	}
	snapshot := s.profile.Clone()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	if err := s.profileRepo.Save(ctx, snapshot); err != nil {
		s.logger.Error("Failed to persist profile",
			slog.String("profileId", snapshot.ID.String()),
			slog.Any("error", err))
	}

	for _, listener := range listeners {
		listener()
	}

	return nil
}
