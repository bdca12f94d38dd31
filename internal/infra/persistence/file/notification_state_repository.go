package file

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"paraquip/config"
	"paraquip/internal/domain/entity"
	"paraquip/internal/domain/repository"
	"paraquip/internal/errors"

	"github.com/google/uuid"
)

const (
	stateFileName      = "notifications.json"
	stateSchemaVersion = 1
)

type persistedState struct {
	Version            int             `json:"version"`
	IsEnabled          bool            `json:"isEnabled"`
	WasRequestRejected bool            `json:"wasRequestRejected"`
	Configuration      []persistedRule `json:"configuration"`
}

type persistedRule struct {
	ID         uuid.UUID `json:"id"`
	Unit       string    `json:"unit"`
	Multiplier int       `json:"multiplier"`
}

type notificationStateRepository struct {
	path   string
	logger *slog.Logger
}

// NewNotificationStateRepository stores the reminder engine state next to
// the profile files.
func NewNotificationStateRepository(cfg *config.Config, logger *slog.Logger) (repository.NotificationStateRepository, error) {
	if err := os.MkdirAll(cfg.Storage.Path, 0o755); err != nil {
		return nil, errors.Wrap(err, "create storage directory")
	}

	return &notificationStateRepository{
		path:   filepath.Join(cfg.Storage.Path, stateFileName),
		logger: logger,
	}, nil
}

// Save writes the state file atomically.
func (r *notificationStateRepository) Save(ctx context.Context, state entity.NotificationState) error {
	rules := make([]persistedRule, 0, len(state.Configuration))
	for _, cfg := range state.Configuration {
		rules = append(rules, persistedRule{
			ID:         cfg.ID,
			Unit:       string(cfg.Unit),
			Multiplier: cfg.Multiplier,
		})
	}

	data, err := json.MarshalIndent(persistedState{
		Version:            stateSchemaVersion,
		IsEnabled:          state.IsEnabled,
		WasRequestRejected: state.WasRequestRejected,
		Configuration:      rules,
	}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode notification state")
	}

	if err := writeFileAtomic(r.path, data); err != nil {
		return errors.Wrap(err, "write notification state")
	}

	return nil
}

// Load reads the state file. A missing file yields ErrStateNotFound so the
// caller can fall back to the default state.
func (r *notificationStateRepository) Load(ctx context.Context) (entity.NotificationState, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entity.NotificationState{}, repository.ErrStateNotFound
		}

		return entity.NotificationState{}, errors.Wrap(err, "read notification state")
	}

	var persisted persistedState
	if err := json.Unmarshal(data, &persisted); err != nil {
		return entity.NotificationState{}, errors.Wrap(err, "decode notification state")
	}

	if persisted.Version > stateSchemaVersion {
		return entity.NotificationState{}, errors.Wrapf(repository.ErrUnsupportedSchemaVersion,
			"notification state has version %d, newest supported is %d", persisted.Version, stateSchemaVersion)
	}

	rules := make([]entity.NotificationConfig, 0, len(persisted.Configuration))
	for _, rule := range persisted.Configuration {
		rules = append(rules, entity.NotificationConfig{
			ID:         rule.ID,
			Unit:       entity.NotificationUnit(rule.Unit),
			Multiplier: rule.Multiplier,
		})
	}

	return entity.NotificationState{
		IsEnabled:          persisted.IsEnabled,
		WasRequestRejected: persisted.WasRequestRejected,
		Configuration:      rules,
	}, nil
}
