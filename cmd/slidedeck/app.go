package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/slidedeck/internal/adapters/secondary/config"
	"github.com/fredcamaral/slidedeck/internal/adapters/secondary/frontmatter"
	"github.com/fredcamaral/slidedeck/internal/adapters/secondary/logging"
	"github.com/fredcamaral/slidedeck/internal/adapters/secondary/slug"
	"github.com/fredcamaral/slidedeck/internal/domain/entities"
	"github.com/fredcamaral/slidedeck/internal/domain/ports"
	"github.com/fredcamaral/slidedeck/internal/domain/services"
)

// app holds the services a command needs, built from the effective config
type app struct {
	config *entities.Config
	logger *slog.Logger
	fs     ports.FileSystem
	parser *frontmatter.Parser
	deck   *services.DeckService
}

// newConfigService creates the config service honoring --config
func newConfigService(cmd *cobra.Command) ports.ConfigService {
	loader := config.NewTOMLLoader()
	if path, _ := cmd.Flags().GetString(flagConfig); path != "" {
		loader = config.NewTOMLLoaderWithPath(path)
	}
	return services.NewConfigService(loader, config.NewConfigMerger())
}

// loadConfig resolves the effective configuration for a slides directory.
// overrides are command specific flag values keyed like config.Flag*.
func loadConfig(cmd *cobra.Command, slidesDir string, overrides map[string]interface{}) (*entities.Config, error) {
	flags := map[string]interface{}{}
	if mode, _ := cmd.Flags().GetString(flagMode); mode != "" {
		flags[config.FlagMode] = mode
	}
	if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
		flags[config.FlagVerbose] = true
	}
	for k, v := range overrides {
		flags[k] = v
	}

	if slidesDir == "" {
		slidesDir = "."
	}

	cfg, err := newConfigService(cmd).LoadConfig(cmd.Context(), slidesDir, flags)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// newApp loads configuration and wires the deck service.
// dirArg is the slides directory given on the command line, if any.
func newApp(cmd *cobra.Command, dirArg string, overrides map[string]interface{}) (*app, string, error) {
	if dirArg != "" {
		if overrides == nil {
			overrides = map[string]interface{}{}
		}
		overrides[config.FlagDirectory] = dirArg
	}

	cfg, err := loadConfig(cmd, dirArg, overrides)
	if err != nil {
		return nil, "", err
	}

	logger := logging.New(cfg.Logging, cmd.ErrOrStderr())
	parser := frontmatter.NewParser(cfg.FrontMatter.GetMode(), logger)
	fs := ports.NewRealFileSystem()

	deck := services.NewDeckService(fs, parser,
		services.WithExtension(cfg.Slides.GetExtension()),
		services.WithLayout(cfg.Template.GetLayout()),
		services.WithSlugger(slug.Make),
		services.WithLogger(logger),
	)

	logger.Debug("Configuration loaded",
		slog.String("dir", cfg.Slides.GetDirectory()),
		slog.String("mode", string(cfg.FrontMatter.GetMode())),
	)

	return &app{
		config: cfg,
		logger: logger,
		fs:     fs,
		parser: parser,
		deck:   deck,
	}, cfg.Slides.GetDirectory(), nil
}

// optionalArg returns args[i] or "" when absent
func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
