package builders

import (
	"github.com/fredcamaral/slidedeck/internal/domain/entities"
)

// SlideFileBuilder helps build slide file contents for testing
type SlideFileBuilder struct {
	header *entities.FrontMatter
	body   string
	raw    *string
}

// NewSlideFileBuilder creates a builder with a title, an author and a short body
func NewSlideFileBuilder() *SlideFileBuilder {
	header := entities.NewFrontMatter()
	header.Set("layout", entities.Scalar("slide"))
	header.Set("title", entities.Scalar("Test Slide"))
	header.Set("author", entities.Scalar("Test Author"))

	return &SlideFileBuilder{
		header: header,
		body:   "\n## Test Slide\n\nTest content\n",
	}
}

// WithTitle sets the title header
func (b *SlideFileBuilder) WithTitle(title string) *SlideFileBuilder {
	b.header.Set("title", entities.Scalar(title))
	return b
}

// WithAuthor sets the author header
func (b *SlideFileBuilder) WithAuthor(author string) *SlideFileBuilder {
	b.header.Set("author", entities.Scalar(author))
	return b
}

// WithHeader sets an arbitrary header value
func (b *SlideFileBuilder) WithHeader(key string, value entities.FrontMatterValue) *SlideFileBuilder {
	b.header.Set(key, value)
	return b
}

// WithBody sets the body text
func (b *SlideFileBuilder) WithBody(body string) *SlideFileBuilder {
	b.body = body
	return b
}

// WithRaw replaces the whole file content, ignoring header and body
func (b *SlideFileBuilder) WithRaw(content string) *SlideFileBuilder {
	b.raw = &content
	return b
}

// Build renders the file content
func (b *SlideFileBuilder) Build() string {
	if b.raw != nil {
		return *b.raw
	}
	return entities.FormatDocument(b.header, b.body)
}

// SlideFile renders a slide file with the given title and author
func SlideFile(title, author string) string {
	return NewSlideFileBuilder().WithTitle(title).WithAuthor(author).Build()
}
