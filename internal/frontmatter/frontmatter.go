// Package frontmatter splits component documents into their metadata
// block and body text.
//
// A document opens a metadata block with a line consisting solely of the
// delimiter and closes it with the next such line. Everything between the
// two delimiter lines is the block; everything after the closing line is
// the body. Both "no block" and "never closed" are reported through
// sentinel errors so callers can treat them as findings rather than
// failures.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter is the fence line that opens and closes a metadata block.
const Delimiter = "---"

var (
	// ErrNoMetadataBlock reports a document that does not open with the
	// delimiter line. The caller receives the full content as body.
	ErrNoMetadataBlock = errors.New("frontmatter: no metadata block")

	// ErrUnclosedMetadataBlock reports a document that opens a metadata
	// block but never closes it. The caller receives the full content
	// as body.
	ErrUnclosedMetadataBlock = errors.New("frontmatter: unclosed metadata block")
)

// Block is the parsed key/value header of a component document.
// Values are strings or string lists; a key holding an empty value is
// treated as absent by the accessors.
type Block struct {
	values map[string]any
}

// Parse splits content into its metadata block and body.
//
// When content does not open with the delimiter, Parse returns a nil
// block, the content unchanged as body, and ErrNoMetadataBlock. When the
// opening delimiter is never closed, Parse returns a nil block, the
// content unchanged, and ErrUnclosedMetadataBlock. Both errors are
// non-fatal by contract: the document is still usable as plain body text.
//
// The enclosed text is decoded as YAML first; if the decoder rejects it,
// a line-by-line fallback takes over where lines without a separator are
// skipped, surrounding quotes are stripped, and the last occurrence of a
// key wins.
func Parse(content string) (*Block, string, error) {
	first, rest, hasNewline := strings.Cut(content, "\n")
	if strings.TrimRight(first, "\r") != Delimiter {
		return nil, content, ErrNoMetadataBlock
	}
	if !hasNewline {
		return nil, content, ErrUnclosedMetadataBlock
	}

	enclosed, body, ok := cutAtDelimiter(rest)
	if !ok {
		return nil, content, ErrUnclosedMetadataBlock
	}

	return &Block{values: parseValues(enclosed)}, strings.TrimSpace(body), nil
}

// cutAtDelimiter splits text at the first line consisting solely of the
// delimiter. The delimiter line itself belongs to neither part.
func cutAtDelimiter(text string) (before, after string, found bool) {
	offset := 0
	for {
		line := text[offset:]
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimRight(line, "\r") == Delimiter {
			return text[:offset], text[offset+len(line):], true
		}
		next := strings.IndexByte(text[offset:], '\n')
		if next < 0 {
			return "", "", false
		}
		offset += next + 1
	}
}

func parseValues(enclosed string) map[string]any {
	trimmed := strings.TrimSpace(enclosed)
	if trimmed == "" {
		return map[string]any{}
	}

	var decoded map[string]any
	if err := yaml.Unmarshal([]byte(trimmed), &decoded); err == nil && decoded != nil {
		return decoded
	}

	// Fallback for headers that are not valid YAML: one key per line,
	// no separator means the line is ignored, last occurrence wins.
	values := make(map[string]any)
	for _, line := range strings.Split(trimmed, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = stripQuotes(strings.TrimSpace(value))
	}
	return values
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Get returns the value for key as a string. The second return value is
// false when the key is absent or its value is empty.
func (b *Block) Get(key string) (string, bool) {
	if b == nil {
		return "", false
	}
	raw, ok := b.values[key]
	if !ok || raw == nil {
		return "", false
	}
	s := stringify(raw)
	if s == "" {
		return "", false
	}
	return s, true
}

// Has reports whether key is present with a non-empty value.
func (b *Block) Has(key string) bool {
	_, ok := b.Get(key)
	return ok
}

// List returns the value for key as a string list. List-valued keys map
// element-wise; a scalar containing commas is split into trimmed parts; a
// plain scalar becomes a single-element list. Absent or empty keys yield
// nil.
func (b *Block) List(key string) []string {
	if b == nil {
		return nil
	}
	raw, ok := b.values[key]
	if !ok || raw == nil {
		return nil
	}
	if items, ok := raw.([]any); ok {
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s := strings.TrimSpace(stringify(item)); s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
	s := stringify(raw)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Len returns the number of keys in the block.
func (b *Block) Len() int {
	if b == nil {
		return 0
	}
	return len(b.values)
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
