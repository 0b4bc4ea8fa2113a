// Package frontmatter splits slide documents into a header mapping and a body.
//
// A header is the block between a first line of exactly "---" and the next
// line of exactly "---". Both LF and CRLF line endings are accepted. Text
// without such a block is all body.
//
// Two decoders are available for the header lines:
//
//   - [SimpleDecoder] reads "key: value" lines. A value wrapped in double
//     quotes is unquoted. A value wrapped in square brackets becomes a list
//     of comma separated items, each optionally quoted.
//   - [YAMLDecoder] reads the header as a YAML mapping.
//
// Parsing never fails. When a header cannot be decoded the mapping is empty
// and the body is the entire input.
package frontmatter
