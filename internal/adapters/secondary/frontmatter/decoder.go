package frontmatter

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fredcamaral/slidedeck/internal/domain/entities"
)

// ErrMalformedHeader is returned by decoders when a header cannot be used at all
var ErrMalformedHeader = errors.New("malformed front matter header")

// Decoder turns header text into a front matter mapping
type Decoder interface {
	Decode(header string) (*entities.FrontMatter, error)
}

// SimpleDecoder decodes "key: value" lines with quoted scalars and bracketed lists
type SimpleDecoder struct{}

// Decode implements Decoder.
// Lines that are blank, have no colon or have an empty key are skipped.
// Invalid UTF-8 makes the whole header malformed.
func (SimpleDecoder) Decode(header string) (*entities.FrontMatter, error) {
	if !utf8.ValidString(header) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrMalformedHeader)
	}

	fm := entities.NewFrontMatter()
	for _, line := range strings.Split(header, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, raw, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		fm.Set(key, decodeValue(strings.TrimSpace(raw)))
	}

	return fm, nil
}

// decodeValue applies the quoting and list rules to a trimmed raw value
func decodeValue(raw string) entities.FrontMatterValue {
	if unquoted, ok := unwrap(raw, '"', '"'); ok {
		return entities.Scalar(unquoted)
	}

	if inner, ok := unwrap(raw, '[', ']'); ok {
		if strings.TrimSpace(inner) == "" {
			return entities.List()
		}

		parts := strings.Split(inner, ",")
		items := make([]string, 0, len(parts))
		for _, part := range parts {
			item := strings.TrimSpace(part)
			if unquoted, ok := unwrap(item, '"', '"'); ok {
				item = unquoted
			}
			items = append(items, item)
		}
		return entities.List(items...)
	}

	return entities.Scalar(raw)
}

// unwrap strips one open/close pair surrounding the whole of s
func unwrap(s string, open, close byte) (string, bool) {
	if len(s) < 2 || s[0] != open || s[len(s)-1] != close {
		return "", false
	}
	return s[1 : len(s)-1], true
}

var _ Decoder = SimpleDecoder{}
