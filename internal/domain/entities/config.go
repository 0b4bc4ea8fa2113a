package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Config represents the complete application configuration
type Config struct {
	Slides      SlidesConfig      `toml:"slides"`
	FrontMatter FrontMatterConfig `toml:"frontmatter"`
	Template    TemplateConfig    `toml:"template"`
	Logging     LoggingConfig     `toml:"logging"`
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if err := c.Slides.Validate(); err != nil {
		return fmt.Errorf("slides config: %w", err)
	}

	if err := c.FrontMatter.Validate(); err != nil {
		return fmt.Errorf("frontmatter config: %w", err)
	}

	if err := c.Template.Validate(); err != nil {
		return fmt.Errorf("template config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// SlidesConfig controls where slides are found
type SlidesConfig struct {
	Directory string `toml:"directory"`
	Extension string `toml:"extension"`
}

// Validate validates slides configuration
func (s SlidesConfig) Validate() error {
	if s.Extension == "" {
		return nil
	}

	if !strings.HasPrefix(s.Extension, ".") {
		return fmt.Errorf("extension must start with a dot: %s", s.Extension)
	}

	if strings.ContainsAny(s.Extension, `/\`) {
		return fmt.Errorf("extension cannot contain path separators: %s", s.Extension)
	}

	return nil
}

// GetDirectory returns the slides directory with default
func (s SlidesConfig) GetDirectory() string {
	if s.Directory == "" {
		return "."
	}
	return s.Directory
}

// GetExtension returns the slide file extension with default
func (s SlidesConfig) GetExtension() string {
	if s.Extension == "" {
		return ".md"
	}
	return s.Extension
}

// FrontMatterMode selects how header lines are decoded
type FrontMatterMode string

const (
	// FrontMatterModeSimple decodes "key: value" lines with bracketed lists
	FrontMatterModeSimple FrontMatterMode = "simple"
	// FrontMatterModeYAML decodes the header as YAML
	FrontMatterModeYAML FrontMatterMode = "yaml"
)

// FrontMatterConfig contains front matter decoding configuration
type FrontMatterConfig struct {
	Mode string `toml:"mode"` // simple, yaml
}

// Validate validates front matter configuration
func (f FrontMatterConfig) Validate() error {
	switch FrontMatterMode(f.Mode) {
	case FrontMatterModeSimple, FrontMatterModeYAML, "":
		return nil
	default:
		return fmt.Errorf("invalid front matter mode: %s (must be simple or yaml)", f.Mode)
	}
}

// GetMode returns the decoding mode with default
func (f FrontMatterConfig) GetMode() FrontMatterMode {
	if f.Mode == "" {
		return FrontMatterModeSimple
	}
	return FrontMatterMode(f.Mode)
}

// TemplateConfig contains defaults for new slides
type TemplateConfig struct {
	Layout string `toml:"layout"`
	Author string `toml:"author"`
}

// Validate validates template configuration
func (t TemplateConfig) Validate() error {
	if strings.ContainsAny(t.Layout, "\r\n") {
		return errors.New("layout cannot contain line breaks")
	}
	if strings.ContainsAny(t.Author, "\r\n") {
		return errors.New("author cannot contain line breaks")
	}
	return nil
}

// GetLayout returns the layout with default
func (t TemplateConfig) GetLayout() string {
	if t.Layout == "" {
		return DefaultLayout
	}
	return t.Layout
}

// LogLevel represents logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `toml:"level"`       // debug, info, warn, error
	JSONFormat bool   `toml:"json_format"` // Output logs in JSON format
}

// Validate validates logging configuration
func (l LoggingConfig) Validate() error {
	switch LogLevel(l.Level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		// Valid levels
	case "":
		// Empty is okay, will use default
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", l.Level)
	}
	return nil
}

// GetLevel returns the log level with default
func (l LoggingConfig) GetLevel() LogLevel {
	if l.Level == "" {
		return LogLevelWarn
	}
	return LogLevel(l.Level)
}
