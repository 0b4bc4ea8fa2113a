package entities

import (
	"fmt"
	"strconv"
)

// UnorderedPosition is assigned to slides whose filename has no numeric prefix
const UnorderedPosition = 999

// SlideDescriptor is the metadata derived from one slide file
type SlideDescriptor struct {
	// Filename is the base name of the slide file
	Filename string `json:"filename"`

	// Path is the absolute path of the slide file
	Path string `json:"path"`

	// Title comes from the "title" front matter key
	Title string `json:"title"`

	// Author comes from the "author" front matter key
	Author string `json:"author"`

	// Position is the numeric filename prefix, or UnorderedPosition
	Position int `json:"position"`
}

// IsOrdered reports whether the slide has an explicit position
func (s SlideDescriptor) IsOrdered() bool {
	return s.Position != UnorderedPosition
}

// String returns a short human readable form
func (s SlideDescriptor) String() string {
	return fmt.Sprintf("%s (position=%d, title=%q, author=%q)", s.Filename, s.Position, s.Title, s.Author)
}

// NewSlideDescriptor builds a descriptor from a parsed document.
// Missing or list-valued title and author default to "".
func NewSlideDescriptor(filename, path string, doc Document) SlideDescriptor {
	return SlideDescriptor{
		Filename: filename,
		Path:     path,
		Title:    doc.FrontMatter.Scalar("title"),
		Author:   doc.FrontMatter.Scalar("author"),
		Position: PositionFromFilename(filename),
	}
}

// PositionFromFilename parses the leading run of ASCII digits in filename.
// Names without a digit prefix, or whose prefix overflows an int, get UnorderedPosition.
func PositionFromFilename(filename string) int {
	end := 0
	for end < len(filename) && filename[end] >= '0' && filename[end] <= '9' {
		end++
	}
	if end == 0 {
		return UnorderedPosition
	}

	position, err := strconv.Atoi(filename[:end])
	if err != nil {
		return UnorderedPosition
	}
	return position
}
