package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/slidedeck/internal/domain/entities"
)

func TestSimpleDecoder_Decode(t *testing.T) {
	t.Run("scalars", func(t *testing.T) {
		fm, err := SimpleDecoder{}.Decode("title: Intro\nauthor: \"Alice\"\n  layout :  slide  ")
		require.NoError(t, err)

		assert.Equal(t, []string{"title", "author", "layout"}, fm.Keys())
		assert.Equal(t, "Intro", fm.Scalar("title"))
		assert.Equal(t, "Alice", fm.Scalar("author"))
		assert.Equal(t, "slide", fm.Scalar("layout"))
	})

	t.Run("splits at first colon", func(t *testing.T) {
		fm, err := SimpleDecoder{}.Decode("time: 10:30\nurl: https://example.com")
		require.NoError(t, err)

		assert.Equal(t, "10:30", fm.Scalar("time"))
		assert.Equal(t, "https://example.com", fm.Scalar("url"))
	})

	t.Run("skips blank lines and lines without colon", func(t *testing.T) {
		fm, err := SimpleDecoder{}.Decode("\n   \nbad line no colon\ntitle: Intro\n")
		require.NoError(t, err)

		assert.Equal(t, []string{"title"}, fm.Keys())
	})

	t.Run("duplicate key last wins", func(t *testing.T) {
		fm, err := SimpleDecoder{}.Decode("title: One\nauthor: A\ntitle: Two")
		require.NoError(t, err)

		assert.Equal(t, []string{"title", "author"}, fm.Keys())
		assert.Equal(t, "Two", fm.Scalar("title"))
	})

	t.Run("empty value", func(t *testing.T) {
		fm, err := SimpleDecoder{}.Decode("title:")
		require.NoError(t, err)

		v, ok := fm.Get("title")
		require.True(t, ok)
		assert.True(t, v.Equal(entities.Scalar("")))
	})

	t.Run("skips empty key lines", func(t *testing.T) {
		fm, err := SimpleDecoder{}.Decode("title: Intro\n: orphan\nauthor: \"Alice\"")
		require.NoError(t, err)

		assert.Equal(t, []string{"title", "author"}, fm.Keys())
		assert.Equal(t, "Intro", fm.Scalar("title"))
		assert.Equal(t, "Alice", fm.Scalar("author"))
	})

	t.Run("invalid utf8 is malformed", func(t *testing.T) {
		_, err := SimpleDecoder{}.Decode("title: \xff\xfe")
		assert.ErrorIs(t, err, ErrMalformedHeader)
	})
}

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want entities.FrontMatterValue
	}{
		{"plain", "Intro", entities.Scalar("Intro")},
		{"quoted", `"Intro"`, entities.Scalar("Intro")},
		{"quoted keeps inner quotes", `"say "hi""`, entities.Scalar(`say "hi"`)},
		{"quoted list text stays scalar", `"[a, b]"`, entities.Scalar("[a, b]")},
		{"single quote char", `"`, entities.Scalar(`"`)},
		{"empty quotes", `""`, entities.Scalar("")},
		{"unbalanced quote", `"Intro`, entities.Scalar(`"Intro`)},
		{"list", `[a, b, c]`, entities.List("a", "b", "c")},
		{"quoted list items", `["go", "slides"]`, entities.List("go", "slides")},
		{"mixed list items", `[ "go" ,slides ]`, entities.List("go", "slides")},
		{"empty list", `[]`, entities.List()},
		{"blank list", `[   ]`, entities.List()},
		{"empty items kept", `[a,,b]`, entities.List("a", "", "b")},
		{"single item", `[solo]`, entities.List("solo")},
		{"unbalanced open bracket", `[a, b`, entities.Scalar("[a, b")},
		{"unbalanced close bracket", `a, b]`, entities.Scalar("a, b]")},
		{"lone bracket", `[`, entities.Scalar("[")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeValue(tt.raw)
			assert.True(t, tt.want.Equal(got), "want %s, got %s (%s)", tt.want, got, got.Kind())
		})
	}
}
