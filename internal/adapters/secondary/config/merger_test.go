package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fredcamaral/slidedeck/internal/domain/entities"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{EnvSlidesDir, EnvExtension, EnvMode, EnvLayout, EnvAuthor, EnvLogLevel, EnvLogJSON} {
		t.Setenv(key, "")
	}
}

func TestConfigMerger_Merge(t *testing.T) {
	clearEnv(t)
	merger := NewConfigMerger()

	t.Run("no configs returns defaults", func(t *testing.T) {
		result := merger.Merge()

		assert.Equal(t, ".", result.Slides.Directory)
		assert.Equal(t, ".md", result.Slides.Extension)
		assert.Equal(t, "simple", result.FrontMatter.Mode)
		assert.Equal(t, "slide", result.Template.Layout)
		assert.Equal(t, "warn", result.Logging.Level)
	})

	t.Run("later configs win and empty fields do not override", func(t *testing.T) {
		base := GetDefaultConfig()
		global := &entities.Config{
			Template: entities.TemplateConfig{Author: "Alice"},
			Logging:  entities.LoggingConfig{JSONFormat: true},
		}
		local := &entities.Config{
			Slides:      entities.SlidesConfig{Directory: "deck"},
			FrontMatter: entities.FrontMatterConfig{Mode: "yaml"},
		}

		result := merger.Merge(base, global, nil, local)

		assert.Equal(t, "deck", result.Slides.Directory)
		assert.Equal(t, ".md", result.Slides.Extension)
		assert.Equal(t, "yaml", result.FrontMatter.Mode)
		assert.Equal(t, "Alice", result.Template.Author)
		assert.Equal(t, "slide", result.Template.Layout)
		assert.True(t, result.Logging.JSONFormat)
	})

	t.Run("inputs are not modified", func(t *testing.T) {
		base := GetDefaultConfig()
		override := &entities.Config{Slides: entities.SlidesConfig{Directory: "other"}}

		merger.Merge(base, override)

		assert.Equal(t, ".", base.Slides.Directory)
	})
}

func TestConfigMerger_ApplyFlags(t *testing.T) {
	clearEnv(t)
	merger := NewConfigMerger()
	base := GetDefaultConfig()

	result := merger.ApplyFlags(base, map[string]interface{}{
		FlagDirectory: "deck",
		FlagMode:      "yaml",
		FlagAuthor:    "Carol",
		FlagLayout:    "",
		FlagVerbose:   true,
	})

	assert.Equal(t, "deck", result.Slides.Directory)
	assert.Equal(t, "yaml", result.FrontMatter.Mode)
	assert.Equal(t, "Carol", result.Template.Author)
	assert.Equal(t, "slide", result.Template.Layout)
	assert.Equal(t, "debug", result.Logging.Level)

	assert.Equal(t, ".", base.Slides.Directory)

	unchanged := merger.ApplyFlags(base, map[string]interface{}{FlagVerbose: false, FlagDirectory: 42})
	assert.Equal(t, "warn", unchanged.Logging.Level)
	assert.Equal(t, ".", unchanged.Slides.Directory)
}

func TestConfigMerger_ApplyEnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSlidesDir, "env-deck")
	t.Setenv(EnvAuthor, "Dana")
	t.Setenv(EnvLogJSON, "true")
	t.Setenv(EnvLogLevel, "info")

	result := NewConfigMerger().ApplyEnvVars(&entities.Config{})

	assert.Equal(t, "env-deck", result.Slides.Directory)
	assert.Equal(t, "Dana", result.Template.Author)
	assert.Equal(t, "info", result.Logging.Level)
	assert.True(t, result.Logging.JSONFormat)
}

func TestGetDefaultConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvExtension, ".markdown")
	t.Setenv(EnvLogJSON, "not-a-bool")

	config := GetDefaultConfig()

	assert.Equal(t, ".markdown", config.Slides.Extension)
	assert.False(t, config.Logging.JSONFormat)
	assert.NoError(t, config.Validate())
}
