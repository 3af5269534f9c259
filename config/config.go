package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const VERSION = "1.2"

type Config struct {
	Server      ServerConfig
	Templates   TemplatesConfig
	Catalog     CatalogConfig
	Render      RenderConfig
	Environment string
	LogLevel    string
	Version     string
}

type ServerConfig struct {
	Port int
	Host string
}

// TemplatesConfig points at the HTML resources the renderer fetches:
// module templates live at <BaseURL>/modules/<typeID>.html and
// additional-content partials at <BaseURL>/partials/<kind>.html.
type TemplatesConfig struct {
	BaseURL string
	// Dir, when set, serves templates from the local filesystem instead
	// of BaseURL. Used for offline rendering and tests.
	Dir string
}

type CatalogConfig struct {
	// URL of the module catalog JSON. Empty means the built-in catalog.
	URL string
	// Path of a local catalog JSON file, takes precedence over URL.
	Path string
}

// RenderConfig controls the outer shell the assembler wraps around the
// concatenated module HTML.
type RenderConfig struct {
	WrapBackgroundColor string
	WrapBorder          string
	WrapWidth           int
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	// Try to load .env file but don't require it
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)

	v.SetDefault("TEMPLATE_BASE_URL", "https://cdn.edmkit.io/newsletter")
	v.SetDefault("TEMPLATE_DIR", "")

	v.SetDefault("CATALOG_URL", "")
	v.SetDefault("CATALOG_PATH", "")

	v.SetDefault("WRAP_BACKGROUND_COLOR", "#ffffff")
	v.SetDefault("WRAP_BORDER", "")
	v.SetDefault("WRAP_WIDTH", 680)

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
		},
		Templates: TemplatesConfig{
			BaseURL: strings.TrimRight(v.GetString("TEMPLATE_BASE_URL"), "/"),
			Dir:     v.GetString("TEMPLATE_DIR"),
		},
		Catalog: CatalogConfig{
			URL:  v.GetString("CATALOG_URL"),
			Path: v.GetString("CATALOG_PATH"),
		},
		Render: RenderConfig{
			WrapBackgroundColor: v.GetString("WRAP_BACKGROUND_COLOR"),
			WrapBorder:          v.GetString("WRAP_BORDER"),
			WrapWidth:           v.GetInt("WRAP_WIDTH"),
		},
		Environment: v.GetString("ENVIRONMENT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Version:     v.GetString("VERSION"),
	}

	if config.Templates.BaseURL == "" && config.Templates.Dir == "" {
		return nil, fmt.Errorf("TEMPLATE_BASE_URL or TEMPLATE_DIR is required")
	}

	return config, nil
}

// IsDevelopment returns true when running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
