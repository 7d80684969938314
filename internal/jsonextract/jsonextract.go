// Package jsonextract pulls the first well-formed JSON object out of
// free-form text. LLM replies are not guaranteed to be pure JSON - they
// often wrap the object in prose or markdown fences - so every call site
// expecting structured output scans the reply through this package instead
// of unmarshalling it directly.
package jsonextract

import (
	"encoding/json"
	"strings"
)

// Object returns the first top-level {...} span in text that parses as a
// JSON object. The boolean is false when no such span exists.
//
// The scan is brace-depth based and string-aware, so braces inside JSON
// strings do not terminate the span early.
func Object(text string) (json.RawMessage, bool) {
	start := strings.IndexByte(text, '{')
	for start >= 0 && start < len(text) {
		if end := matchObject(text, start); end > start {
			candidate := text[start : end+1]
			if json.Valid([]byte(candidate)) {
				return json.RawMessage(candidate), true
			}
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += 1 + next
	}
	return nil, false
}

// Unmarshal extracts the first JSON object from text and unmarshals it
// into v. The boolean is false when no parseable object was found or the
// object did not fit v.
func Unmarshal(text string, v any) bool {
	raw, ok := Object(text)
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// matchObject returns the index of the brace closing the object opened at
// start, or -1 when the object never closes.
func matchObject(text string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
