package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fredcamaral/slidedeck/internal/domain/entities"
	"github.com/fredcamaral/slidedeck/internal/domain/ports"
)

var (
	// ErrSlideNotFound is returned when no slide has the requested position
	ErrSlideNotFound = errors.New("slide not found")

	// ErrSlideExists is returned when a new slide would replace an existing file
	ErrSlideExists = errors.New("slide file already exists")
)

const defaultExtension = ".md"

// Slugger turns a slide title into a filename fragment
type Slugger func(title string) string

// DeckService implements the business logic for a directory of slides
type DeckService struct {
	fs        ports.FileSystem
	parser    ports.FrontMatterParser
	slugger   Slugger
	extension string
	layout    string
	logger    *slog.Logger
}

// DeckOption customizes a DeckService
type DeckOption func(*DeckService)

// WithExtension sets the slide file extension (default ".md")
func WithExtension(ext string) DeckOption {
	return func(s *DeckService) {
		if ext != "" {
			s.extension = ext
		}
	}
}

// WithLayout sets the layout written into new slides
func WithLayout(layout string) DeckOption {
	return func(s *DeckService) {
		s.layout = layout
	}
}

// WithSlugger sets the function used to name new slide files
func WithSlugger(slugger Slugger) DeckOption {
	return func(s *DeckService) {
		if slugger != nil {
			s.slugger = slugger
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) DeckOption {
	return func(s *DeckService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewDeckService creates a new deck service
func NewDeckService(fs ports.FileSystem, parser ports.FrontMatterParser, opts ...DeckOption) *DeckService {
	service := &DeckService{
		fs:        fs,
		parser:    parser,
		slugger:   strings.ToLower,
		extension: defaultExtension,
		layout:    entities.DefaultLayout,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

// ListSlides returns the slides in dir sorted by position.
// A missing or non-directory path yields no slides. Files that cannot be
// read are logged and skipped. Slides sharing a position keep listing order.
func (s *DeckService) ListSlides(ctx context.Context, dir string) ([]entities.SlideDescriptor, error) {
	if dir == "" {
		return []entities.SlideDescriptor{}, nil
	}

	info, err := s.fs.Stat(dir)
	if err != nil {
		if ports.IsNotExist(err) {
			return []entities.SlideDescriptor{}, nil
		}
		return nil, fmt.Errorf("%w %s: %w", ports.ErrListDirectory, dir, err)
	}
	if !info.IsDir() {
		return []entities.SlideDescriptor{}, nil
	}

	entries, err := s.fs.ListFiles(dir)
	if err != nil {
		if ports.IsNotExist(err) {
			return []entities.SlideDescriptor{}, nil
		}
		return nil, fmt.Errorf("%w %s: %w", ports.ErrListDirectory, dir, err)
	}

	slides := make([]entities.SlideDescriptor, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if entry.IsDir || !strings.HasSuffix(entry.Name, s.extension) {
			continue
		}

		slide, err := s.loadDescriptor(entry)
		if err != nil {
			s.logger.Warn("Skipping unreadable slide",
				slog.String("path", entry.Path),
				slog.String("error", err.Error()),
			)
			continue
		}

		slides = append(slides, slide)
	}

	slices.SortStableFunc(slides, func(a, b entities.SlideDescriptor) int {
		return cmp.Compare(a.Position, b.Position)
	})

	s.logger.Debug("Listed slides",
		slog.String("dir", dir),
		slog.Int("count", len(slides)),
	)

	return slides, nil
}

// FindSlideByPosition returns the first slide, in sorted order, at position
func (s *DeckService) FindSlideByPosition(ctx context.Context, dir string, position int) (entities.SlideDescriptor, error) {
	slides, err := s.ListSlides(ctx, dir)
	if err != nil {
		return entities.SlideDescriptor{}, err
	}

	for _, slide := range slides {
		if slide.Position == position {
			return slide, nil
		}
	}

	return entities.SlideDescriptor{}, fmt.Errorf("%w: position %d in %s", ErrSlideNotFound, position, dir)
}

// ReadSlide returns the slide at position with its parsed document and body sections
func (s *DeckService) ReadSlide(ctx context.Context, dir string, position int) (*ports.SlideContent, error) {
	descriptor, err := s.FindSlideByPosition(ctx, dir, position)
	if err != nil {
		return nil, err
	}

	text, err := s.fs.ReadAllText(descriptor.Path)
	if err != nil {
		return nil, fmt.Errorf("reading slide %s: %w", descriptor.Filename, err)
	}

	doc := s.parser.Parse(text)

	return &ports.SlideContent{
		Descriptor: descriptor,
		Document:   doc,
		Sections:   doc.Sections(),
	}, nil
}

// NextPosition returns one past the highest ordered position in dir, or 1 for an empty deck
func (s *DeckService) NextPosition(ctx context.Context, dir string) (int, error) {
	slides, err := s.ListSlides(ctx, dir)
	if err != nil {
		return 0, err
	}

	next := 1
	for _, slide := range slides {
		if slide.IsOrdered() && slide.Position >= next {
			next = slide.Position + 1
		}
	}

	return next, nil
}

// CreateSlide writes a new slide from the template and returns its path.
// The file is named "<NN>-<slug><ext>", or "XX-<slug><ext>" without a position.
func (s *DeckService) CreateSlide(ctx context.Context, dir string, req ports.CreateSlideRequest) (string, error) {
	req.Title = entities.SingleLine(req.Title)
	req.Author = entities.SingleLine(req.Author)
	if strings.TrimSpace(req.Title) == "" {
		return "", errors.New("slide title cannot be empty")
	}
	if req.Position != nil && (*req.Position < 0 || *req.Position >= entities.UnorderedPosition) {
		return "", fmt.Errorf("slide position must be between 0 and %d", entities.UnorderedPosition-1)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}

	layout := req.Layout
	if layout == "" {
		layout = s.layout
	}

	filename := SlideFilename(req.Position, s.slugger(req.Title), s.extension)
	path := filepath.Join(dir, filename)

	if !req.Force && s.fs.Exists(path) {
		return "", fmt.Errorf("%w: %s", ErrSlideExists, path)
	}

	if err := s.fs.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	content := entities.NewSlideTemplateWithLayout(layout, req.Title, req.Author, req.Position)
	if err := s.fs.WriteText(path, content, 0600); err != nil {
		return "", fmt.Errorf("writing slide %s: %w", path, err)
	}

	s.logger.Info("Created slide",
		slog.String("path", path),
		slog.String("title", req.Title),
	)

	return path, nil
}

// SlideFilename builds the filename for a new slide
func SlideFilename(position *int, slug, ext string) string {
	if ext == "" {
		ext = defaultExtension
	}
	return entities.SlideNumber(position) + "-" + slug + ext
}

// loadDescriptor reads and parses one slide file
func (s *DeckService) loadDescriptor(entry ports.FileEntry) (entities.SlideDescriptor, error) {
	text, err := s.fs.ReadAllText(entry.Path)
	if err != nil {
		return entities.SlideDescriptor{}, err
	}

	path, err := s.fs.Abs(entry.Path)
	if err != nil {
		path = entry.Path
	}

	return entities.NewSlideDescriptor(entry.Name, path, s.parser.Parse(text)), nil
}

// Ensure DeckService implements ports.DeckService
var _ ports.DeckService = (*DeckService)(nil)
