package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTranslator(t *testing.T) *Translator {
	t.Helper()

	translator, err := New()
	require.NoError(t, err)

	return translator
}

func TestTranslate_SubstitutesPlaceholders(t *testing.T) {
	translator := createTestTranslator(t)

	got := translator.Translate("en", "notification_check_due_days_body_other", map[string]string{
		"brand": "Gin",
		"name":  "Explorer",
		"count": "14",
	})

	assert.Equal(t, "Your Gin Explorer is due for a check in 14 days", got)
}

func TestTranslate_Title(t *testing.T) {
	translator := createTestTranslator(t)

	assert.Equal(t, "Check due", translator.Translate("en", "notification_check_due_title", nil))
}

func TestTranslate_GermanLocale(t *testing.T) {
	translator := createTestTranslator(t)

	got := translator.Translate("de", "notification_check_due_months_body_one", map[string]string{
		"brand": "Advance",
		"name":  "Iota",
	})

	assert.NotEqual(t, "notification_check_due_months_body_one", got)
	assert.Contains(t, got, "Advance Iota")
}

func TestTranslate_FallsBackToEnglish(t *testing.T) {
	translator := createTestTranslator(t)

	got := translator.Translate("fr", "notification_check_due_title", nil)
	assert.Equal(t, "Check due", got)
}

func TestTranslate_UnknownKeyReturnsKey(t *testing.T) {
	translator := createTestTranslator(t)

	assert.Equal(t, "no_such_key", translator.Translate("en", "no_such_key", nil))
}
