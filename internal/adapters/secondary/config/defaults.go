package config

import (
	"os"
	"strconv"

	"github.com/fredcamaral/slidedeck/internal/domain/entities"
)

// Environment variables read on top of the defaults
const (
	EnvSlidesDir   = "SLIDEDECK_DIR"
	EnvExtension   = "SLIDEDECK_EXTENSION"
	EnvMode        = "SLIDEDECK_FRONTMATTER_MODE"
	EnvLayout      = "SLIDEDECK_LAYOUT"
	EnvAuthor      = "SLIDEDECK_AUTHOR"
	EnvLogLevel    = "SLIDEDECK_LOG_LEVEL"
	EnvLogJSON     = "SLIDEDECK_LOG_JSON"
	localFileName  = "slidedeck.toml"
	globalDirName  = "slidedeck"
	globalFileName = "config.toml"
)

// GetDefaultConfig returns the default configuration with environment overrides
func GetDefaultConfig() *entities.Config {
	return &entities.Config{
		Slides: entities.SlidesConfig{
			Directory: getEnvOrDefault(EnvSlidesDir, "."),
			Extension: getEnvOrDefault(EnvExtension, ".md"),
		},
		FrontMatter: entities.FrontMatterConfig{
			Mode: getEnvOrDefault(EnvMode, string(entities.FrontMatterModeSimple)),
		},
		Template: entities.TemplateConfig{
			Layout: getEnvOrDefault(EnvLayout, entities.DefaultLayout),
			Author: getEnvOrDefault(EnvAuthor, ""),
		},
		Logging: entities.LoggingConfig{
			Level:      getEnvOrDefault(EnvLogLevel, string(entities.LogLevelWarn)),
			JSONFormat: getEnvBoolOrDefault(EnvLogJSON, false),
		},
	}
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBoolOrDefault returns environment variable as bool or default
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
