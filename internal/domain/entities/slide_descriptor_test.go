package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     int
	}{
		{"01-intro.md", 1},
		{"02-setup.md", 2},
		{"10.md", 10},
		{"007_bond.md", 7},
		{"3intro.md", 3},
		{"intro.md", UnorderedPosition},
		{"", UnorderedPosition},
		{"-01-intro.md", UnorderedPosition},
		{"99999999999999999999999-overflow.md", UnorderedPosition},
		{"٣-arabic-digit.md", UnorderedPosition},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, PositionFromFilename(tt.filename))
		})
	}
}

func TestNewSlideDescriptor(t *testing.T) {
	t.Run("reads title and author", func(t *testing.T) {
		doc := NewDocument("body")
		doc.FrontMatter.Set("title", Scalar("Intro"))
		doc.FrontMatter.Set("author", Scalar("Alice"))

		got := NewSlideDescriptor("01-intro.md", "/deck/01-intro.md", doc)

		assert.Equal(t, SlideDescriptor{
			Filename: "01-intro.md",
			Path:     "/deck/01-intro.md",
			Title:    "Intro",
			Author:   "Alice",
			Position: 1,
		}, got)
		assert.True(t, got.IsOrdered())
	})

	t.Run("missing and list fields default to empty", func(t *testing.T) {
		doc := NewDocument("body")
		doc.FrontMatter.Set("title", List("a", "b"))

		got := NewSlideDescriptor("intro.md", "/deck/intro.md", doc)

		assert.Empty(t, got.Title)
		assert.Empty(t, got.Author)
		assert.Equal(t, UnorderedPosition, got.Position)
		assert.False(t, got.IsOrdered())
	})

	t.Run("nil front matter", func(t *testing.T) {
		got := NewSlideDescriptor("1.md", "/1.md", Document{Body: "x"})
		assert.Empty(t, got.Title)
		assert.Equal(t, 1, got.Position)
	})
}

func TestSlideDescriptor_String(t *testing.T) {
	s := SlideDescriptor{Filename: "01-intro.md", Title: "Intro", Author: "Alice", Position: 1}
	assert.Equal(t, `01-intro.md (position=1, title="Intro", author="Alice")`, s.String())
}
