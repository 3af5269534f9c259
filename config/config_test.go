package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "https://cdn.edmkit.io/newsletter", cfg.Templates.BaseURL)
	assert.Equal(t, "#ffffff", cfg.Render.WrapBackgroundColor)
	assert.Equal(t, 680, cfg.Render.WrapWidth)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, VERSION, cfg.Version)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TEMPLATE_BASE_URL", "https://templates.internal/")
	t.Setenv("ENVIRONMENT", "development")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	// trailing slash is normalized away
	assert.Equal(t, "https://templates.internal", cfg.Templates.BaseURL)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadRequiresTemplateSource(t *testing.T) {
	t.Setenv("TEMPLATE_BASE_URL", "")
	t.Setenv("TEMPLATE_DIR", "")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEMPLATE_BASE_URL")
}
