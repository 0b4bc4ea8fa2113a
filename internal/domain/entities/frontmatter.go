package entities

import (
	"encoding/json"
	"strings"
)

// ValueKind identifies which variant a FrontMatterValue holds
type ValueKind int

const (
	// ScalarKind is a single string value
	ScalarKind ValueKind = iota
	// ListKind is an ordered sequence of strings
	ListKind
)

// String returns the kind name
func (k ValueKind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case ListKind:
		return "list"
	default:
		return "unknown"
	}
}

// FrontMatterValue is either a scalar string or a list of strings.
// The zero value is an empty scalar.
type FrontMatterValue struct {
	kind   ValueKind
	scalar string
	list   []string
}

// Scalar creates a scalar value
func Scalar(s string) FrontMatterValue {
	return FrontMatterValue{kind: ScalarKind, scalar: s}
}

// List creates a list value. The items are copied.
func List(items ...string) FrontMatterValue {
	copied := make([]string, len(items))
	copy(copied, items)
	return FrontMatterValue{kind: ListKind, list: copied}
}

// Kind reports which variant the value holds
func (v FrontMatterValue) Kind() ValueKind {
	return v.kind
}

// AsScalar returns the scalar string and true, or "" and false for a list
func (v FrontMatterValue) AsScalar() (string, bool) {
	if v.kind != ScalarKind {
		return "", false
	}
	return v.scalar, true
}

// AsList returns a copy of the list items and true, or nil and false for a scalar
func (v FrontMatterValue) AsList() ([]string, bool) {
	if v.kind != ListKind {
		return nil, false
	}
	items := make([]string, len(v.list))
	copy(items, v.list)
	return items, true
}

// Equal reports whether two values hold the same variant and content
func (v FrontMatterValue) Equal(other FrontMatterValue) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == ScalarKind {
		return v.scalar == other.scalar
	}
	if len(v.list) != len(other.list) {
		return false
	}
	for i := range v.list {
		if v.list[i] != other.list[i] {
			return false
		}
	}
	return true
}

// String formats the value the way it appears in a header line
func (v FrontMatterValue) String() string {
	switch v.kind {
	case ListKind:
		quoted := make([]string, len(v.list))
		for i, item := range v.list {
			quoted[i] = `"` + item + `"`
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return `"` + v.scalar + `"`
	}
}

// MarshalJSON encodes scalars as JSON strings and lists as JSON arrays
func (v FrontMatterValue) MarshalJSON() ([]byte, error) {
	if v.kind == ListKind {
		return json.Marshal(v.list)
	}
	return json.Marshal(v.scalar)
}

// FrontMatter is an ordered mapping of header keys to values.
// Setting an existing key replaces its value but keeps its original position.
type FrontMatter struct {
	keys   []string
	values map[string]FrontMatterValue
}

// NewFrontMatter creates an empty front matter mapping
func NewFrontMatter() *FrontMatter {
	return &FrontMatter{values: make(map[string]FrontMatterValue)}
}

// Set stores a value under key
func (fm *FrontMatter) Set(key string, value FrontMatterValue) {
	if fm.values == nil {
		fm.values = make(map[string]FrontMatterValue)
	}
	if _, exists := fm.values[key]; !exists {
		fm.keys = append(fm.keys, key)
	}
	fm.values[key] = value
}

// Get returns the value for key
func (fm *FrontMatter) Get(key string) (FrontMatterValue, bool) {
	if fm == nil {
		return FrontMatterValue{}, false
	}
	v, ok := fm.values[key]
	return v, ok
}

// Scalar returns the scalar value for key, or "" if the key is absent or holds a list
func (fm *FrontMatter) Scalar(key string) string {
	v, ok := fm.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.AsScalar()
	return s
}

// Keys returns the keys in insertion order
func (fm *FrontMatter) Keys() []string {
	if fm == nil {
		return nil
	}
	keys := make([]string, len(fm.keys))
	copy(keys, fm.keys)
	return keys
}

// Len returns the number of keys
func (fm *FrontMatter) Len() int {
	if fm == nil {
		return 0
	}
	return len(fm.keys)
}

// IsEmpty reports whether the mapping has no keys
func (fm *FrontMatter) IsEmpty() bool {
	return fm.Len() == 0
}

// Encode renders the mapping as header lines, one per key, each terminated by a newline.
// Values are written unescaped, so a value holding a line break or a double
// quote does not decode back to itself. See SingleLine.
func (fm *FrontMatter) Encode() string {
	var b strings.Builder
	for _, key := range fm.Keys() {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(fm.values[key].String())
		b.WriteString("\n")
	}
	return b.String()
}

// MarshalJSON encodes the mapping as a JSON object in insertion order
func (fm *FrontMatter) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteString("{")
	for i, key := range fm.Keys() {
		if i > 0 {
			b.WriteString(",")
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := fm.values[key].MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteString(":")
		b.Write(v)
	}
	b.WriteString("}")
	return []byte(b.String()), nil
}

// Document is a text document split into its front matter and body
type Document struct {
	FrontMatter *FrontMatter `json:"front_matter"`
	Body        string       `json:"body"`
}

// NewDocument creates a document with an empty mapping and the given body
func NewDocument(body string) Document {
	return Document{FrontMatter: NewFrontMatter(), Body: body}
}

// Sections splits the body on lines consisting solely of "---".
// Sections are trimmed and empty sections are dropped.
func (d Document) Sections() []string {
	body := strings.ReplaceAll(d.Body, "\r\n", "\n")
	var sections []string
	var current []string

	flush := func() {
		section := strings.TrimSpace(strings.Join(current, "\n"))
		if section != "" {
			sections = append(sections, section)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "---" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return sections
}

// FormatDocument joins a header and body into a document with "---" delimiters
func FormatDocument(fm *FrontMatter, body string) string {
	return "---\n" + fm.Encode() + "---\n" + body
}
