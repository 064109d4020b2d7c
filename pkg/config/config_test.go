package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dayanaadylkhanova/randomiser/internal/entity"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LOG_LEVEL", "LOG_FORMAT", "RANDOMISER_LOCALE", "MAX_LIST_ITEMS",
		"MIN_QUANTITY", "MAX_QUANTITY", "MIN_BOUND", "MAX_BOUND",
	} {
		t.Setenv(k, "") // restores the original value after the test
		_ = os.Unsetenv(k)
	}
}

func TestParse_Defaults_WhenEnvMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, entity.DefaultLimits(), cfg.Limits())
	assert.Equal(t, language.AmericanEnglish, cfg.Language())
}

func TestParse_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("RANDOMISER_LOCALE", "de")
	t.Setenv("MAX_LIST_ITEMS", "50")
	t.Setenv("MAX_QUANTITY", "10")
	t.Setenv("MIN_BOUND", "-5")
	t.Setenv("MAX_BOUND", "5")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, language.German, cfg.Language())
	assert.Equal(t, entity.Limits{
		MaxListItems: 50,
		MinQuantity:  1,
		MaxQuantity:  10,
		MinBound:     -5,
		MaxBound:     5,
	}, cfg.Limits())
}

func TestParse_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_LIST_ITEMS", "lots")

	_, err := Parse()
	assert.Error(t, err)
}

func TestParse_InvertedLimits(t *testing.T) {
	clearEnv(t)
	t.Setenv("MIN_QUANTITY", "20")
	t.Setenv("MAX_QUANTITY", "10")

	_, err := Parse()
	assert.ErrorContains(t, err, "MIN_QUANTITY")

	clearEnv(t)
	t.Setenv("MIN_BOUND", "1")
	t.Setenv("MAX_BOUND", "0")

	_, err = Parse()
	assert.ErrorContains(t, err, "MIN_BOUND")
}

func TestLanguage_FallsBackToEnglish(t *testing.T) {
	cfg := Config{Locale: "not a locale!"}
	assert.Equal(t, language.English, cfg.Language())
}
