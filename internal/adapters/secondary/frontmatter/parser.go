package frontmatter

import (
	"log/slog"

	"github.com/fredcamaral/slidedeck/internal/domain/entities"
	"github.com/fredcamaral/slidedeck/internal/domain/ports"
)

// Parser implements ports.FrontMatterParser
type Parser struct {
	decoder Decoder
	logger  *slog.Logger
}

// NewParser creates a parser using the decoder for mode.
// Unknown modes fall back to the simple decoder.
func NewParser(mode entities.FrontMatterMode, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}

	return &Parser{
		decoder: DecoderFor(mode),
		logger:  logger,
	}
}

// NewParserWithDecoder creates a parser with a custom decoder
func NewParserWithDecoder(decoder Decoder, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{decoder: decoder, logger: logger}
}

// DecoderFor returns the decoder for a front matter mode
func DecoderFor(mode entities.FrontMatterMode) Decoder {
	if mode == entities.FrontMatterModeYAML {
		return YAMLDecoder{}
	}
	return SimpleDecoder{}
}

// Parse splits text into front matter and body.
// Text without a header, or with a header the decoder rejects, comes back
// whole as the body with an empty mapping.
func (p *Parser) Parse(text string) entities.Document {
	if text == "" {
		return entities.NewDocument("")
	}

	header, body, ok := Split(text)
	if !ok {
		return entities.NewDocument(text)
	}

	fm, err := p.decoder.Decode(header)
	if err != nil {
		p.logger.Debug("Ignoring front matter",
			slog.String("error", err.Error()),
		)
		return entities.NewDocument(text)
	}

	return entities.Document{FrontMatter: fm, Body: body}
}

// Parse parses text with the simple decoder
func Parse(text string) entities.Document {
	return defaultParser.Parse(text)
}

var defaultParser = &Parser{decoder: SimpleDecoder{}, logger: slog.New(slog.DiscardHandler)}

var _ ports.FrontMatterParser = (*Parser)(nil)
