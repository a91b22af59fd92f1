package notecrypt

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"unicode/utf8"
)

// maxCanonicalDepth bounds nesting during canonicalization. Content built
// to reference itself would otherwise recurse forever.
const maxCanonicalDepth = 100

// Value is one node of signable content: a [String], a [Number], or a
// nested [Content]. The interface is sealed so canonicalization is total
// over its members; there is no open "any" escape hatch.
type Value interface {
	appendCanonical(dst []byte, depth int) ([]byte, error)
}

// String is a string content value.
type String string

// Number is a numeric content value. NaN and infinities cannot be
// canonicalized and are rejected at signing time.
type Number float64

// Content is signable structured content: a mapping of string keys to
// content values. It canonicalizes to a JSON object with bytewise-sorted
// keys and no whitespace, so two structurally equal values always produce
// identical bytes regardless of construction order.
type Content map[string]Value

func (s String) appendCanonical(dst []byte, depth int) ([]byte, error) {
	return appendJSONString(dst, string(s)), nil
}

func (n Number) appendCanonical(dst []byte, depth int) ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: non-finite number", ErrInvalidContent)
	}
	return strconv.AppendFloat(dst, f, 'g', -1, 64), nil
}

func (c Content) appendCanonical(dst []byte, depth int) ([]byte, error) {
	if depth >= maxCanonicalDepth {
		return nil, fmt.Errorf("%w: nesting exceeds %d levels", ErrInvalidContent, maxCanonicalDepth)
	}

	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	dst = append(dst, '{')
	for i, k := range keys {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendJSONString(dst, k)
		dst = append(dst, ':')

		v := c[k]
		if v == nil {
			return nil, fmt.Errorf("%w: nil value for key %q", ErrInvalidContent, k)
		}
		var err error
		if dst, err = v.appendCanonical(dst, depth+1); err != nil {
			return nil, err
		}
	}
	return append(dst, '}'), nil
}

// Canonicalize returns the unique canonical string form of content.
// Canonicalization is pure: it depends only on the content's structure,
// never on construction order or representation.
func Canonicalize(content Content) (string, error) {
	out, err := content.appendCanonical(nil, 0)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// NewContent converts a dynamic map (for example decoded JSON) into
// Content. Supported value types are strings, Go numeric types, existing
// [Value] implementations, and nested map[string]any / Content; anything
// else fails with [ErrInvalidContent].
func NewContent(m map[string]any) (Content, error) {
	return newContent(m, 0)
}

func newContent(m map[string]any, depth int) (Content, error) {
	if depth >= maxCanonicalDepth {
		return nil, fmt.Errorf("%w: nesting exceeds %d levels", ErrInvalidContent, maxCanonicalDepth)
	}

	c := make(Content, len(m))
	for k, v := range m {
		switch t := v.(type) {
		case Value:
			c[k] = t
		case string:
			c[k] = String(t)
		case float64:
			c[k] = Number(t)
		case float32:
			c[k] = Number(t)
		case int:
			c[k] = Number(t)
		case int32:
			c[k] = Number(t)
		case int64:
			c[k] = Number(t)
		case uint:
			c[k] = Number(t)
		case uint32:
			c[k] = Number(t)
		case uint64:
			c[k] = Number(t)
		case map[string]any:
			nested, err := newContent(t, depth+1)
			if err != nil {
				return nil, err
			}
			c[k] = nested
		default:
			return nil, fmt.Errorf("%w: unsupported value type %T for key %q", ErrInvalidContent, v, k)
		}
	}
	return c, nil
}

// appendJSONString appends s as a JSON string literal with minimal
// escaping: quote, backslash and control characters only; everything else
// stays verbatim UTF-8.
func appendJSONString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for _, r := range s {
		switch r {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			if r < 0x20 {
				dst = append(dst, fmt.Sprintf(`\u%04x`, r)...)
			} else {
				dst = utf8.AppendRune(dst, r)
			}
		}
	}
	return append(dst, '"')
}
