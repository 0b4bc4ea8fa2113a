package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fredcamaral/slidedeck/internal/adapters/secondary/renderer"
	"github.com/fredcamaral/slidedeck/internal/domain/ports"
)

type showOptions struct {
	html bool
	meta bool
}

func newShowCmd() *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:   "show <position> [dir]",
		Short: "Print the slide at a position",
		Long: `Print the body of the first slide whose filename prefix matches
position. Use --meta to include its decoded front matter and --html to
render the slide as a standalone HTML page.

Examples:
  slidedeck show 2
  slidedeck show 1 talks/intro --html > intro.html`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			a, dir, err := newApp(cmd, optionalArg(args, 1), nil)
			if err != nil {
				return err
			}

			slide, err := a.deck.ReadSlide(cmd.Context(), dir, position)
			if err != nil {
				return err
			}

			if opts.html {
				return outputSlideHTML(cmd.OutOrStdout(), slide)
			}
			outputSlideText(cmd.OutOrStdout(), slide, opts.meta)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.html, "html", false, "Render the slide as HTML")
	cmd.Flags().BoolVar(&opts.meta, "meta", false, "Print the decoded front matter")

	return cmd
}

// parsePosition parses a slide position argument
func parsePosition(arg string) (int, error) {
	position, err := strconv.Atoi(arg)
	if err != nil || position < 0 {
		return 0, fmt.Errorf("invalid position %q: must be a non-negative integer", arg)
	}
	return position, nil
}

func outputSlideHTML(w io.Writer, slide *ports.SlideContent) error {
	page, err := renderer.NewPageRenderer(renderer.NewHTMLRenderer())
	if err != nil {
		return err
	}

	html, err := page.RenderPage(slide)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", slide.Descriptor.Filename, err)
	}

	_, err = w.Write(html)
	return err
}

func outputSlideText(w io.Writer, slide *ports.SlideContent, meta bool) {
	if meta {
		heading := color.New(color.Bold).SprintFunc()
		fmt.Fprintln(w, heading(slide.Descriptor.Filename))
		fmt.Fprint(w, slide.Document.FrontMatter.Encode())
		fmt.Fprintln(w, color.New(color.FgHiBlack).Sprint("---"))
	}
	fmt.Fprint(w, slide.Document.Body)
}
