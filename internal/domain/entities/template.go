package entities

import (
	"fmt"
	"strings"
)

const (
	// DefaultLayout is the layout written into new slide headers
	DefaultLayout = "slide"

	// PlaceholderSlideNumber stands in for the number of a slide without a position
	PlaceholderSlideNumber = "XX"
)

// SlideNumber formats a position as a two digit number, or "XX" when position is nil
func SlideNumber(position *int) string {
	if position == nil {
		return PlaceholderSlideNumber
	}
	return fmt.Sprintf("%02d", *position)
}

// NewSlideTemplate returns the skeleton of a new slide document
func NewSlideTemplate(title, author string, position *int) string {
	return NewSlideTemplateWithLayout(DefaultLayout, title, author, position)
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// SingleLine replaces line breaks in s with spaces so it fits one header line
func SingleLine(s string) string {
	return lineBreaks.Replace(s)
}

// NewSlideTemplateWithLayout is NewSlideTemplate with a custom layout name.
// Line breaks in layout, title and author are flattened to spaces.
func NewSlideTemplateWithLayout(layout, title, author string, position *int) string {
	layout, title, author = SingleLine(layout), SingleLine(title), SingleLine(author)
	if layout == "" {
		layout = DefaultLayout
	}

	header := NewFrontMatter()
	header.Set("layout", Scalar(layout))
	header.Set("title", Scalar(title))
	header.Set("author", Scalar(author))
	header.Set("slide", Scalar(SlideNumber(position)))

	var body strings.Builder
	body.WriteString("\n")
	body.WriteString("## " + title + "\n\n")
	body.WriteString("### By " + author + "\n\n")
	body.WriteString("* Bullet point 1\n")
	body.WriteString("* Bullet point 2\n")
	body.WriteString("* Bullet point 3\n\n")
	body.WriteString("---\n\n")
	body.WriteString("### More Content\n\n")
	body.WriteString("* Use horizontal rules (---) to separate slide content\n")
	body.WriteString("* This creates a new slide in the presentation\n")

	return FormatDocument(header, body.String())
}
