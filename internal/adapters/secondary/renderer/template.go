package renderer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/fredcamaral/slidedeck/internal/domain/ports"
)

// PageRenderer wraps rendered slide sections into a standalone HTML page
type PageRenderer struct {
	markdown *HTMLRenderer
	page     *template.Template
}

// NewPageRenderer creates a page renderer backed by markdown
func NewPageRenderer(markdown *HTMLRenderer) (*PageRenderer, error) {
	if markdown == nil {
		markdown = NewHTMLRenderer()
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	return &PageRenderer{markdown: markdown, page: tmpl}, nil
}

// RenderPage renders one slide and its sections as an HTML document
func (r *PageRenderer) RenderPage(slide *ports.SlideContent) ([]byte, error) {
	if slide == nil {
		return nil, fmt.Errorf("slide cannot be nil")
	}

	sections, err := r.markdown.RenderSections(slide.Sections)
	if err != nil {
		return nil, err
	}

	// sections were sanitized by the markdown renderer
	safe := make([]template.HTML, len(sections))
	for i, s := range sections {
		safe[i] = template.HTML(s) // #nosec G203
	}

	title := slide.Descriptor.Title
	if title == "" {
		title = slide.Descriptor.Filename
	}

	data := struct {
		Title    string
		Author   string
		Position int
		Sections []template.HTML
	}{
		Title:    title,
		Author:   slide.Descriptor.Author,
		Position: slide.Descriptor.Position,
		Sections: safe,
	}

	var buf bytes.Buffer
	if err := r.page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}

	return buf.Bytes(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    {{- if .Author}}
    <meta name="author" content="{{.Author}}">
    {{- end}}
</head>
<body>
    <main class="slide" data-position="{{.Position}}">
    {{- range $i, $section := .Sections}}
        <section class="slide-section" data-index="{{$i}}">
{{$section}}
        </section>
    {{- end}}
    </main>
</body>
</html>
`
