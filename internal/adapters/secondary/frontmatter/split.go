package frontmatter

import (
	"strings"
)

const delimiter = "---"

// Split locates the header block at the start of text.
// It returns the header lines without their delimiters, the text following
// the closing delimiter line, and whether a header block was found.
func Split(text string) (header, body string, ok bool) {
	rest, found := cutDelimiterLine(text)
	if !found {
		return "", "", false
	}

	offset := 0
	for {
		line, next, more := nextLine(rest, offset)
		if strings.TrimSuffix(line, "\r") == delimiter {
			header = strings.TrimSuffix(rest[:offset], "\n")
			header = strings.TrimSuffix(header, "\r")
			return header, rest[next:], true
		}
		if !more {
			return "", "", false
		}
		offset = next
	}
}

// cutDelimiterLine strips a leading "---" line and returns what follows it
func cutDelimiterLine(text string) (string, bool) {
	if rest, ok := strings.CutPrefix(text, delimiter+"\n"); ok {
		return rest, true
	}
	if rest, ok := strings.CutPrefix(text, delimiter+"\r\n"); ok {
		return rest, true
	}
	return "", false
}

// nextLine returns the line starting at offset, the offset of the line after
// it, and whether the line was terminated by a newline
func nextLine(s string, offset int) (line string, next int, more bool) {
	end := strings.IndexByte(s[offset:], '\n')
	if end == -1 {
		return s[offset:], len(s), false
	}
	return s[offset : offset+end], offset + end + 1, true
}
