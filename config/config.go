package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath           = "."
	defaultStoragePath    = "data"
	defaultLocale         = "en"
	defaultTriggerHour    = 9
	defaultSoonWindowDays = 30
	defaultDebounce       = 2 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Storage configuration for the profile and notification state files
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Locale used for notification texts
	Locale string `json:"locale" yaml:"locale"`

	// Profile selects the active profile on launch
	Profile ProfileConfig `json:"profile" yaml:"profile"`

	// Notifications configuration for the reminder engine
	Notifications NotificationsConfig `json:"notifications" yaml:"notifications"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines where profile files are kept on disk
type StorageConfig struct {
	Path string `json:"path" yaml:"path" validate:"required"`
}

// ProfileConfig selects the profile loaded on launch
type ProfileConfig struct {
	// ID of the profile to load; empty creates a fresh profile
	ID string `json:"id" yaml:"id" validate:"omitempty,uuid"`

	// Name used when a fresh profile is created
	Name string `json:"name" yaml:"name"`
}

// NotificationsConfig defines configuration for the reminder engine
type NotificationsConfig struct {
	// Hour of day (local time) at which reminders fire
	TriggerHour int `json:"triggerHour" yaml:"triggerHour" validate:"min=0,max=23"`

	// Number of days before the due date within which a check counts as due soon
	SoonWindowDays int `json:"soonWindowDays" yaml:"soonWindowDays" validate:"min=1"`

	// Coalescing window for successive reschedule triggers
	Debounce time.Duration `json:"debounce" yaml:"debounce" validate:"min=0"`

	// Authorization outcome of the local scheduler: "grant" or "deny"
	Authorization string `json:"authorization" yaml:"authorization" validate:"oneof=grant deny"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: NOTIFICATIONS_SOONWINDOWDAYS -> notifications.soonWindowDays
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "validate config failed")
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Storage.Path) == "" {
		cfg.Storage.Path = defaultStoragePath
	}
	if strings.TrimSpace(cfg.Locale) == "" {
		cfg.Locale = defaultLocale
	}
	if cfg.Notifications.TriggerHour == 0 {
		cfg.Notifications.TriggerHour = defaultTriggerHour
	}
	if cfg.Notifications.SoonWindowDays == 0 {
		cfg.Notifications.SoonWindowDays = defaultSoonWindowDays
	}
	if cfg.Notifications.Debounce == 0 {
		cfg.Notifications.Debounce = defaultDebounce
	}
	if cfg.Notifications.Authorization == "" {
		cfg.Notifications.Authorization = "grant"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
