package ports

import (
	"context"

	"github.com/fredcamaral/slidedeck/internal/domain/entities"
)

// ConfigLoader reads slidedeck.toml files
type ConfigLoader interface {
	// LoadGlobal reads the user config file. A missing file yields an empty config.
	LoadGlobal(ctx context.Context) (*entities.Config, error)

	// LoadLocal reads slidedeck.toml from a slides directory
	LoadLocal(ctx context.Context, slidesDir string) (*entities.Config, error)

	// CreateDefaults writes a config file holding the defaults
	CreateDefaults(ctx context.Context, path string) error

	GetGlobalPath() string
	GetLocalPath(slidesDir string) string
}

// ConfigMerger layers configs. Later layers win field by field.
type ConfigMerger interface {
	// Merge with no configs returns the defaults
	Merge(configs ...*entities.Config) *entities.Config

	// ApplyFlags overrides fields from command line values keyed by flag name
	ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config

	// ApplyEnvVars overrides fields from SLIDEDECK_* variables
	ApplyEnvVars(config *entities.Config) *entities.Config
}

// ConfigService resolves the effective config for a slides directory.
// Precedence: defaults < global file < local file < environment < flags.
type ConfigService interface {
	LoadConfig(ctx context.Context, slidesDir string, flags map[string]interface{}) (*entities.Config, error)

	// CreateGlobalConfig fails if the global file already exists
	CreateGlobalConfig(ctx context.Context) error

	// GlobalPath is where CreateGlobalConfig writes
	GlobalPath() string
}
