package stream

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/gogpu/appkit/container"
)

// ContentType is a parsed MIME-style content type: a type/subtype pair
// plus optional parameters ("text/plain; charset=utf-8"). The zero
// value is invalid; build one with ParseContentType.
type ContentType struct {
	typ     string
	subType string
	params  *container.SortedMap[string, string]
}

// ParseContentType parses a content type string. Type, subtype and
// parameter names are lowercased; parameter values keep their case.
// Quotes around parameter values are stripped.
func ParseContentType(s string) (ContentType, error) {
	mediaType, rest, _ := strings.Cut(s, ";")
	typ, subType, ok := strings.Cut(strings.TrimSpace(mediaType), "/")
	typ = strings.ToLower(strings.TrimSpace(typ))
	subType = strings.ToLower(strings.TrimSpace(subType))
	if !ok || typ == "" || subType == "" {
		return ContentType{}, fmt.Errorf("stream: malformed content type %q", s)
	}

	ct := ContentType{
		typ:     typ,
		subType: subType,
		params:  container.NewSortedMap[string, string](),
	}
	for param := range strings.SplitSeq(rest, ";") {
		param = strings.TrimSpace(param)
		if param == "" {
			continue
		}
		name, value, ok := strings.Cut(param, "=")
		if !ok {
			return ContentType{}, fmt.Errorf("stream: malformed parameter %q in %q", param, s)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.Trim(strings.TrimSpace(value), `"`)
		ct.params.Set(name, value)
	}
	return ct, nil
}

// MustParseContentType is ParseContentType for known-good literals; it
// panics on error.
func MustParseContentType(s string) ContentType {
	ct, err := ParseContentType(s)
	if err != nil {
		panic(err.Error())
	}
	return ct
}

// IsValid reports whether the content type was successfully parsed.
func (c ContentType) IsValid() bool { return c.typ != "" }

// Type returns the media type ("text" in "text/plain").
func (c ContentType) Type() string { return c.typ }

// SubType returns the media subtype ("plain" in "text/plain").
func (c ContentType) SubType() string { return c.subType }

// TypeAndSubType returns "type/subtype" without parameters.
func (c ContentType) TypeAndSubType() string {
	if !c.IsValid() {
		return ""
	}
	return c.typ + "/" + c.subType
}

// Param returns the named parameter value and whether it is present.
// Names are matched lowercase.
func (c ContentType) Param(name string) (string, bool) {
	if c.params == nil {
		return "", false
	}
	return c.params.Get(strings.ToLower(name))
}

// HasParams reports whether any parameters are present.
func (c ContentType) HasParams() bool {
	return c.params != nil && c.params.Len() > 0
}

// Params iterates over the parameters in name order.
func (c ContentType) Params() iter.Seq2[string, string] {
	if c.params == nil {
		return func(func(string, string) bool) {}
	}
	return c.params.All()
}

// Charset resolves the charset parameter to a character encoding via
// the IANA registry. Content types without a charset parameter default
// to UTF-8 (encoding.Nop, since appkit strings are already UTF-8).
func (c ContentType) Charset() (encoding.Encoding, error) {
	name, ok := c.Param("charset")
	if !ok || strings.EqualFold(name, "utf-8") {
		return encoding.Nop, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("stream: unknown charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("stream: charset %q has no available decoder", name)
	}
	return enc, nil
}

// String reassembles the content type with parameters in name order.
func (c ContentType) String() string {
	if !c.IsValid() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(c.TypeAndSubType())
	for name, value := range c.Params() {
		sb.WriteString("; ")
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(value)
	}
	return sb.String()
}
