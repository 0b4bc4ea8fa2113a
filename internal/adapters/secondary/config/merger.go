package config

import (
	"os"
	"strconv"

	"github.com/fredcamaral/slidedeck/internal/domain/entities"
	"github.com/fredcamaral/slidedeck/internal/domain/ports"
)

// Flag keys understood by ApplyFlags
const (
	FlagDirectory = "dir"
	FlagExtension = "extension"
	FlagMode      = "mode"
	FlagLayout    = "layout"
	FlagAuthor    = "author"
	FlagVerbose   = "verbose"
)

// ConfigMerger implements the ConfigMerger interface
type ConfigMerger struct{}

// NewConfigMerger creates a new configuration merger
func NewConfigMerger() *ConfigMerger {
	return &ConfigMerger{}
}

// Merge merges multiple configurations with later configs taking precedence.
// Empty fields never override.
func (m *ConfigMerger) Merge(configs ...*entities.Config) *entities.Config {
	if len(configs) == 0 {
		return GetDefaultConfig()
	}

	result := &entities.Config{}
	for _, c := range configs {
		if c != nil {
			m.mergeInto(result, c)
		}
	}

	return result
}

// ApplyFlags applies CLI flag overrides to a configuration
func (m *ConfigMerger) ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config {
	result := deepCopy(config)

	if dir, ok := flags[FlagDirectory].(string); ok && dir != "" {
		result.Slides.Directory = dir
	}

	if ext, ok := flags[FlagExtension].(string); ok && ext != "" {
		result.Slides.Extension = ext
	}

	if mode, ok := flags[FlagMode].(string); ok && mode != "" {
		result.FrontMatter.Mode = mode
	}

	if layout, ok := flags[FlagLayout].(string); ok && layout != "" {
		result.Template.Layout = layout
	}

	if author, ok := flags[FlagAuthor].(string); ok && author != "" {
		result.Template.Author = author
	}

	if verbose, ok := flags[FlagVerbose].(bool); ok && verbose {
		result.Logging.Level = string(entities.LogLevelDebug)
	}

	return result
}

// ApplyEnvVars applies environment variable overrides to a configuration
func (m *ConfigMerger) ApplyEnvVars(config *entities.Config) *entities.Config {
	result := deepCopy(config)

	if dir := os.Getenv(EnvSlidesDir); dir != "" {
		result.Slides.Directory = dir
	}

	if ext := os.Getenv(EnvExtension); ext != "" {
		result.Slides.Extension = ext
	}

	if mode := os.Getenv(EnvMode); mode != "" {
		result.FrontMatter.Mode = mode
	}

	if layout := os.Getenv(EnvLayout); layout != "" {
		result.Template.Layout = layout
	}

	if author := os.Getenv(EnvAuthor); author != "" {
		result.Template.Author = author
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		result.Logging.Level = level
	}

	if jsonStr := os.Getenv(EnvLogJSON); jsonStr != "" {
		if jsonFormat, err := strconv.ParseBool(jsonStr); err == nil {
			result.Logging.JSONFormat = jsonFormat
		}
	}

	return result
}

// mergeInto merges source configuration into target configuration
func (m *ConfigMerger) mergeInto(target, source *entities.Config) {
	if source.Slides.Directory != "" {
		target.Slides.Directory = source.Slides.Directory
	}
	if source.Slides.Extension != "" {
		target.Slides.Extension = source.Slides.Extension
	}

	if source.FrontMatter.Mode != "" {
		target.FrontMatter.Mode = source.FrontMatter.Mode
	}

	if source.Template.Layout != "" {
		target.Template.Layout = source.Template.Layout
	}
	if source.Template.Author != "" {
		target.Template.Author = source.Template.Author
	}

	if source.Logging.Level != "" {
		target.Logging.Level = source.Logging.Level
	}
	// TOML cannot tell false from unset, so true is sticky
	if source.Logging.JSONFormat {
		target.Logging.JSONFormat = true
	}
}

// deepCopy creates a copy of a configuration; nil yields the defaults
func deepCopy(src *entities.Config) *entities.Config {
	if src == nil {
		return GetDefaultConfig()
	}

	dst := *src
	return &dst
}

// Ensure ConfigMerger implements ports.ConfigMerger
var _ ports.ConfigMerger = (*ConfigMerger)(nil)
