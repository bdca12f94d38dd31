// Package i18n resolves localized notification texts from embedded YAML
// locale files.
package i18n

import (
	"embed"
	"strings"

	"paraquip/internal/errors"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFiles embed.FS

type Translations map[string]string

// Translator holds the loaded locales. Lookups fall back to English and
// finally to the key itself, so a missing translation never breaks a
// notification.
type Translator struct {
	locales map[string]Translations
}

// New loads every embedded locale file.
func New() (*Translator, error) {
	entries, err := localeFiles.ReadDir("locales")
	if err != nil {
		return nil, errors.Wrap(err, "read locales dir")
	}

	locales := make(map[string]Translations, len(entries))
	for _, entry := range entries {
		locale := strings.TrimSuffix(entry.Name(), ".yaml")

		data, err := localeFiles.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "read locale %s", locale)
		}

		var doc struct {
			Notifications Translations `yaml:"NOTIFICATIONS"`
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(err, "parse locale %s", locale)
		}

		locales[locale] = doc.Notifications
	}

	return &Translator{locales: locales}, nil
}

// Translate resolves key in the given locale and substitutes {placeholder}
// style arguments.
func (t *Translator) Translate(locale, key string, args map[string]string) string {
	text := t.lookup(locale, key)
	if len(args) == 0 {
		return text
	}

	pairs := make([]string, 0, len(args)*2)
	for name, value := range args {
		pairs = append(pairs, "{"+name+"}", value)
	}

	return strings.NewReplacer(pairs...).Replace(text)
}

func (t *Translator) lookup(locale, key string) string {
	if trans, ok := t.locales[locale]; ok {
		if val, ok := trans[key]; ok {
			return val
		}
	}

	if locale != "en" {
		if trans, ok := t.locales["en"]; ok {
			if val, ok := trans[key]; ok {
				return val
			}
		}
	}

	return key
}
