package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fredcamaral/slidedeck/internal/adapters/secondary/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage slidedeck configuration",
	}

	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the global config file with defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := newConfigService(cmd)
			if err := service.CreateGlobalConfig(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("Created"), service.GlobalPath())
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [dir]",
		Short: "Print the effective configuration for a slides directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := newApp(cmd, optionalArg(args, 0), nil)
			if err != nil {
				return err
			}

			encoder := toml.NewEncoder(cmd.OutOrStdout())
			encoder.Indent = "  "
			if err := encoder.Encode(a.config); err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			return nil
		},
	}
}

func defaultConfigPath() string {
	return config.NewTOMLLoader().GetGlobalPath()
}
