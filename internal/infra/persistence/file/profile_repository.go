package file

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"paraquip/config"
	"paraquip/internal/domain/entity"
	"paraquip/internal/domain/repository"
	"paraquip/internal/errors"

	"github.com/google/uuid"
)

const profileFileExt = ".json"

type profileRepository struct {
	basePath string
	logger   *slog.Logger
}

// NewProfileRepository creates a profile repository rooted at the configured
// storage directory, creating it if necessary.
func NewProfileRepository(cfg *config.Config, logger *slog.Logger) (repository.ProfileRepository, error) {
	if err := os.MkdirAll(cfg.Storage.Path, 0o755); err != nil {
		return nil, errors.Wrap(err, "create storage directory")
	}

	return &profileRepository{
		basePath: cfg.Storage.Path,
		logger:   logger,
	}, nil
}

// Save writes the full profile as one atomically replaced file keyed by its id.
func (r *profileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	data, err := json.MarshalIndent(toPersistence(profile), "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode profile")
	}

	if err := writeFileAtomic(r.path(profile.ID), data); err != nil {
		return errors.Wrapf(err, "write profile %s", profile.ID)
	}

	return nil
}

// Load reads and decodes the profile, migrating the legacy schema when the
// version tag asks for it.
func (r *profileRepository) Load(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	data, err := os.ReadFile(r.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrapf(err, "read profile %s", id)
	}

	var probe struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrapf(err, "decode profile envelope %s", id)
	}

	switch probe.Version {
	case schemaVersionLegacy:
		var legacy legacyProfile
		if err := json.Unmarshal(data, &legacy); err != nil {
			return nil, errors.Wrapf(err, "decode legacy profile %s", id)
		}

		r.logger.Info("Migrating legacy profile",
			slog.String("profileId", id.String()),
			slog.Int("fromVersion", schemaVersionLegacy),
			slog.Int("toVersion", schemaVersionCurrent))

		return legacy.toModel(), nil
	case schemaVersionCurrent:
		var persisted persistedProfile
		if err := json.Unmarshal(data, &persisted); err != nil {
			return nil, errors.Wrapf(err, "decode profile %s", id)
		}

		return persisted.toModel()
	default:
		return nil, errors.Wrapf(repository.ErrUnsupportedSchemaVersion,
			"profile %s has version %d, newest supported is %d", id, probe.Version, schemaVersionCurrent)
	}
}

// Delete removes the profile file.
func (r *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := os.Remove(r.path(id)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return repository.ErrProfileNotFound
		}

		return errors.Wrapf(err, "delete profile %s", id)
	}

	return nil
}

// List returns the ids of every profile file in the storage directory.
// Files whose name is not a uuid are skipped.
func (r *profileRepository) List(ctx context.Context) ([]uuid.UUID, error) {
	entries, err := os.ReadDir(r.basePath)
	if err != nil {
		return nil, errors.Wrap(err, "read storage directory")
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), profileFileExt) {
			continue
		}

		id, err := uuid.Parse(strings.TrimSuffix(entry.Name(), profileFileExt))
		if err != nil {
			continue
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func (r *profileRepository) path(id uuid.UUID) string {
	return filepath.Join(r.basePath, id.String()+profileFileExt)
}
