package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fredcamaral/slidedeck/internal/adapters/secondary/watcher"
	"github.com/fredcamaral/slidedeck/internal/domain/entities"
)

type listOptions struct {
	json     bool
	watch    bool
	interval time.Duration
}

func newListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List the slides of a deck in order",
		Long: `List every slide file in a directory ordered by the numeric prefix of
its filename. Files without a prefix are listed last in directory order.
With --watch the listing is printed again whenever a slide changes.

Examples:
  slidedeck list
  slidedeck list talks/intro --json
  slidedeck list talks/intro --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, dir, err := newApp(cmd, optionalArg(args, 0), nil)
			if err != nil {
				return err
			}

			if err := printList(cmd, a, dir, opts); err != nil {
				return err
			}

			if opts.watch {
				return watchList(cmd, a, dir, opts)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Output in JSON format")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Print the listing again when slides change")
	cmd.Flags().DurationVar(&opts.interval, "interval", time.Second, "Polling interval for --watch")

	return cmd
}

func printList(cmd *cobra.Command, a *app, dir string, opts listOptions) error {
	slides, err := a.deck.ListSlides(cmd.Context(), dir)
	if err != nil {
		return err
	}

	if opts.json {
		return outputListJSON(cmd.OutOrStdout(), slides)
	}
	return outputListTabular(cmd.OutOrStdout(), dir, slides)
}

// watchList reprints the listing after each batch of changes until the context ends
func watchList(cmd *cobra.Command, a *app, dir string, opts listOptions) error {
	if opts.interval <= 0 {
		return fmt.Errorf("invalid interval %s", opts.interval)
	}

	w := watcher.NewPollingWatcher(a.fs, a.config.Slides.GetExtension(), opts.interval, opts.interval/2, a.logger)
	changes, err := w.Watch(cmd.Context(), dir)
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	out := cmd.OutOrStdout()
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}

			fmt.Fprintln(out)
			for _, event := range change.Events {
				fmt.Fprintf(out, "%s %s\n", color.CyanString("%-8s", event.Type), filepath.Base(event.Path))
			}
			fmt.Fprintln(out)

			if err := printList(cmd, a, dir, opts); err != nil {
				if cmd.Context().Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}

// outputListJSON writes slides as a JSON array
func outputListJSON(w io.Writer, slides []entities.SlideDescriptor) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(slides); err != nil {
		return fmt.Errorf("encoding slides: %w", err)
	}
	return nil
}

// outputListTabular writes slides as an aligned table
func outputListTabular(w io.Writer, dir string, slides []entities.SlideDescriptor) error {
	if len(slides) == 0 {
		fmt.Fprintf(w, "No slides found in %s\n", dir)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POSITION\tFILE\tTITLE\tAUTHOR")

	unordered := 0
	for _, s := range slides {
		position := strconv.Itoa(s.Position)
		if !s.IsOrdered() {
			position = "-"
			unordered++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", position, s.Filename, s.Title, s.Author)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	summary := fmt.Sprintf("%d slide(s)", len(slides))
	if unordered > 0 {
		summary += ", " + color.YellowString("%d without a position", unordered)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, summary)

	return nil
}
