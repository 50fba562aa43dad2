package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, int64(10<<20), cfg.LabelMaxUpload)
	assert.Equal(t, "02/01/2006", cfg.LabelDateLayout)
	assert.Equal(t, 18.0, cfg.LabelLayout().Margin)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("LABEL_MARGIN_PT", "36")
	t.Setenv("LABEL_DATE_LAYOUT", "2006-01-02")
	t.Setenv("OPS_ADDR", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9000", cfg.AppAddr)
	assert.Equal(t, 36.0, cfg.LabelLayout().Margin)
	assert.Equal(t, "2006-01-02", cfg.LabelDateLayout)
	assert.Empty(t, cfg.OpsAddr)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := map[string][2]string{
		"margin too wide":   {"LABEL_MARGIN_PT", "200"},
		"zero upload limit": {"LABEL_MAX_UPLOAD", "0"},
		"negative rate":     {"RATE_LIMIT_PER_MINUTE", "-1"},
		"not a number":      {"LABEL_MARGIN_PT", "wide"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestInTestMode(t *testing.T) {
	t.Setenv(testModeEnv, "1")
	RefreshTestMode()
	assert.True(t, InTestMode())

	t.Setenv(testModeEnv, "")
	RefreshTestMode()
	assert.False(t, InTestMode())
}
