package ports

import (
	"github.com/fredcamaral/slidedeck/internal/domain/entities"
)

// FrontMatterParser splits a document into its front matter and body.
// Implementations never fail: malformed input yields an empty mapping
// and the whole text as body.
type FrontMatterParser interface {
	Parse(text string) entities.Document
}

// MarkdownRenderer converts slide markdown into HTML
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}
