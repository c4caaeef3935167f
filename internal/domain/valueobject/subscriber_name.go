package valueobject

import (
	"strings"

	"github.com/rivo/uniseg"
)

// maxNameGraphemes bounds the display name at 256 grapheme clusters, not
// bytes, so multi-rune characters count once.
const maxNameGraphemes = 256

// forbiddenNameChars are rejected outright to keep names safe for logs,
// emails and SQL tooling.
var forbiddenNameChars = []rune{'/', '(', ')', '"', '<', '>', '\\', '{', '}'}

// SubscriberName is a validated, trimmed subscriber display name. The zero
// value is invalid; ParseSubscriberName is the only constructor.
type SubscriberName struct {
	value string
}

// ParseSubscriberName validates raw form input and returns a SubscriberName.
// The input is trimmed first; it must be non-empty, at most 256 graphemes
// long and free of forbidden characters.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return SubscriberName{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if uniseg.GraphemeClusterCount(trimmed) > maxNameGraphemes {
		return SubscriberName{}, &ValidationError{Field: "name", Reason: "must be at most 256 characters long"}
	}
	for _, c := range forbiddenNameChars {
		if strings.ContainsRune(trimmed, c) {
			return SubscriberName{}, &ValidationError{Field: "name", Reason: "contains a forbidden character"}
		}
	}
	return SubscriberName{value: trimmed}, nil
}

func (n SubscriberName) String() string {
	return n.value
}
