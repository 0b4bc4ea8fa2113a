package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fredcamaral/slidedeck/internal/domain/entities"
)

func newParseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Show how a file's front matter is decoded",
		Long: `Parse a single file and print each decoded front matter key with its
kind, followed by the body. A header that cannot be decoded is treated
as part of the body.

Examples:
  slidedeck parse 01-intro.md
  slidedeck parse 01-intro.md --mode yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := newApp(cmd, "", nil)
			if err != nil {
				return err
			}

			text, err := a.fs.ReadAllText(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			doc := a.parser.Parse(text)

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(doc)
			}
			outputDocument(cmd.OutOrStdout(), doc)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

func outputDocument(w io.Writer, doc entities.Document) {
	key := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.FgHiBlack).SprintFunc()

	if doc.FrontMatter.IsEmpty() {
		fmt.Fprintln(w, dim("(no front matter)"))
	}
	for _, k := range doc.FrontMatter.Keys() {
		v, _ := doc.FrontMatter.Get(k)
		fmt.Fprintf(w, "%s: %s %s\n", key(k), v, dim("("+v.Kind().String()+")"))
	}

	fmt.Fprintln(w, dim("---"))
	fmt.Fprint(w, doc.Body)
}
