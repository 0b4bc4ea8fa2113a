package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version is set during build
	Version = "dev"

	// BuildDate is set during build
	BuildDate = "unknown"
)

// Global flag names
const (
	flagConfig  = "config"
	flagVerbose = "verbose"
	flagMode    = "mode"
	flagNoColor = "no-color"
)

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "slidedeck",
		Short: "Manage a directory of markdown slides",
		Long: `slidedeck works with a directory of markdown slide files. Each file
may start with a front matter header between "---" lines carrying its
title and author, and a numeric filename prefix such as "01-" gives its
position in the deck.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if noColor, _ := cmd.Flags().GetBool(flagNoColor); noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build Date: ` + BuildDate + `
`)

	rootCmd.PersistentFlags().BoolP(flagVerbose, "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringP(flagConfig, "c", "", "Config file (default: "+defaultConfigPath()+")")
	rootCmd.PersistentFlags().String(flagMode, "", "Front matter decoder: simple or yaml (overrides config)")
	rootCmd.PersistentFlags().Bool(flagNoColor, false, "Disable colored output")

	rootCmd.AddCommand(
		newListCmd(),
		newShowCmd(),
		newNewCmd(),
		newParseCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}
