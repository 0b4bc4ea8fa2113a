package renderer

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/fredcamaral/slidedeck/internal/domain/ports"
)

// HTMLRenderer converts slide markdown into sanitized HTML
type HTMLRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewHTMLRenderer creates a goldmark renderer with a UGC sanitization policy
func NewHTMLRenderer() *HTMLRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			// raw HTML is passed through and then sanitized below
			html.WithUnsafe(),
		),
	)

	return &HTMLRenderer{
		md:     md,
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts markdown to HTML
func (r *HTMLRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	return r.policy.Sanitize(buf.String()), nil
}

// RenderSections renders each section separately
func (r *HTMLRenderer) RenderSections(sections []string) ([]string, error) {
	out := make([]string, 0, len(sections))
	for i, section := range sections {
		rendered, err := r.Render(section)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i+1, err)
		}
		out = append(out, rendered)
	}
	return out, nil
}

var _ ports.MarkdownRenderer = (*HTMLRenderer)(nil)
