package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fredcamaral/slidedeck/internal/adapters/secondary/config"
	"github.com/fredcamaral/slidedeck/internal/domain/entities"
	"github.com/fredcamaral/slidedeck/internal/domain/ports"
	"github.com/fredcamaral/slidedeck/internal/domain/services"
)

type newOptions struct {
	author   string
	layout   string
	position int
	next     bool
	force    bool
	stdout   bool
}

func newNewCmd() *cobra.Command {
	var opts newOptions

	cmd := &cobra.Command{
		Use:   "new <title> [dir]",
		Short: "Create a slide from the template",
		Long: `Create a new slide file with a front matter header and a skeleton body.
The file is named after the position and a slug of the title, for
example "03-getting-started.md". Without --position or --next the
file gets the "XX-" placeholder prefix and sorts after numbered slides.

Examples:
  slidedeck new "Getting Started" --position 3
  slidedeck new "Wrap Up" --next --author Alice
  slidedeck new "Draft" --stdout`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.author, "author", "a", "", "Slide author (default from config)")
	cmd.Flags().StringVarP(&opts.layout, "layout", "l", "", "Layout written to the header (default from config)")
	cmd.Flags().IntVarP(&opts.position, "position", "p", 0, "Slide position used for the filename prefix")
	cmd.Flags().BoolVar(&opts.next, "next", false, "Use the position after the last numbered slide")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Print the slide instead of writing a file")
	cmd.MarkFlagsMutuallyExclusive("position", "next")

	return cmd
}

func runNew(cmd *cobra.Command, args []string, opts newOptions) error {
	overrides := map[string]interface{}{
		config.FlagAuthor: opts.author,
		config.FlagLayout: opts.layout,
	}

	a, dir, err := newApp(cmd, optionalArg(args, 1), overrides)
	if err != nil {
		return err
	}

	var position *int
	switch {
	case cmd.Flags().Changed("position"):
		if opts.position < 0 || opts.position >= entities.UnorderedPosition {
			return fmt.Errorf("position must be between 0 and %d", entities.UnorderedPosition-1)
		}
		position = &opts.position
	case opts.next:
		next, err := a.deck.NextPosition(cmd.Context(), dir)
		if err != nil {
			return err
		}
		position = &next
	}

	title := args[0]
	author := a.config.Template.Author
	layout := a.config.Template.GetLayout()

	if opts.stdout {
		_, err := fmt.Fprint(cmd.OutOrStdout(), entities.NewSlideTemplateWithLayout(layout, title, author, position))
		return err
	}

	path, err := a.deck.CreateSlide(cmd.Context(), dir, ports.CreateSlideRequest{
		Title:    title,
		Author:   author,
		Position: position,
		Layout:   layout,
		Force:    opts.force,
	})
	if err != nil {
		if errors.Is(err, services.ErrSlideExists) {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("Created"), path)
	return nil
}
