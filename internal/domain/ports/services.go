package ports

import (
	"context"

	"github.com/fredcamaral/slidedeck/internal/domain/entities"
)

// SlideContent is a slide descriptor together with its parsed document
type SlideContent struct {
	Descriptor entities.SlideDescriptor
	Document   entities.Document
	Sections   []string
}

// CreateSlideRequest describes a slide file to scaffold
type CreateSlideRequest struct {
	Title  string
	Author string

	// Position is nil for an unnumbered slide
	Position *int

	// Layout overrides the template layout when set
	Layout string

	// Force allows replacing an existing file
	Force bool
}

// DeckService defines the operations on a directory of slide files
type DeckService interface {
	// ListSlides returns every slide in dir ordered by position
	ListSlides(ctx context.Context, dir string) ([]entities.SlideDescriptor, error)

	// FindSlideByPosition returns the first slide with the given position
	FindSlideByPosition(ctx context.Context, dir string, position int) (entities.SlideDescriptor, error)

	// ReadSlide returns the slide at position with its parsed content
	ReadSlide(ctx context.Context, dir string, position int) (*SlideContent, error)

	// NextPosition returns the position after the highest ordered slide
	NextPosition(ctx context.Context, dir string) (int, error)

	// CreateSlide writes a new slide file and returns its path
	CreateSlide(ctx context.Context, dir string, req CreateSlideRequest) (string, error)
}
