package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fredcamaral/slidedeck/internal/domain/entities"
	"github.com/fredcamaral/slidedeck/internal/domain/ports"
)

// ConfigService implements the configuration service business logic
type ConfigService struct {
	loader ports.ConfigLoader
	merger ports.ConfigMerger
}

// NewConfigService creates a new configuration service
func NewConfigService(loader ports.ConfigLoader, merger ports.ConfigMerger) *ConfigService {
	return &ConfigService{
		loader: loader,
		merger: merger,
	}
}

// LoadConfig loads the configuration with precedence
// defaults < global file < local file in slidesDir < environment < flags
func (s *ConfigService) LoadConfig(ctx context.Context, slidesDir string, flags map[string]interface{}) (*entities.Config, error) {
	globalConfig, err := s.loader.LoadGlobal(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	configs := []*entities.Config{s.GetDefaultConfig(), globalConfig}

	if slidesDir != "" {
		localConfig, err := s.loader.LoadLocal(ctx, slidesDir)
		if err != nil {
			return nil, fmt.Errorf("loading local config: %w", err)
		}
		configs = append(configs, localConfig)
	}

	merged := s.merger.Merge(configs...)
	withEnv := s.merger.ApplyEnvVars(merged)
	final := s.merger.ApplyFlags(withEnv, flags)

	if err := s.ValidateConfig(final); err != nil {
		return nil, fmt.Errorf("final config validation: %w", err)
	}

	return final, nil
}

// GetDefaultConfig returns the default configuration
func (s *ConfigService) GetDefaultConfig() *entities.Config {
	return s.merger.Merge() // Merge with no arguments returns defaults
}

// ValidateConfig validates a configuration
func (s *ConfigService) ValidateConfig(config *entities.Config) error {
	if config == nil {
		return errors.New("config cannot be nil")
	}

	return config.Validate()
}

// CreateGlobalConfig writes the global configuration file with defaults
func (s *ConfigService) CreateGlobalConfig(ctx context.Context) error {
	return s.loader.CreateDefaults(ctx, s.loader.GetGlobalPath())
}

// GlobalPath returns the global config file path
func (s *ConfigService) GlobalPath() string {
	return s.loader.GetGlobalPath()
}

// Ensure ConfigService implements ports.ConfigService
var _ ports.ConfigService = (*ConfigService)(nil)
