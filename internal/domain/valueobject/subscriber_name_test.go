package valueobject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubscriberName_Valid(t *testing.T) {
	n, err := ParseSubscriberName("le guin")
	require.NoError(t, err)
	assert.Equal(t, "le guin", n.String())
}

func TestParseSubscriberName_TrimsWhitespace(t *testing.T) {
	n, err := ParseSubscriberName("  Ursula K. Le Guin \n")
	require.NoError(t, err)
	assert.Equal(t, "Ursula K. Le Guin", n.String())
}

func TestParseSubscriberName_256GraphemesAccepted(t *testing.T) {
	_, err := ParseSubscriberName(strings.Repeat("a", 256))
	assert.NoError(t, err)
}

func TestParseSubscriberName_Invalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   \t\n"},
		{"longer than 256 graphemes", strings.Repeat("a", 257)},
		{"forward slash", "a/b"},
		{"parentheses", "name (nickname)"},
		{"double quote", `"name"`},
		{"angle brackets", "<script>"},
		{"backslash", `a\b`},
		{"curly braces", "{name}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSubscriberName(tc.raw)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "name", verr.Field)
		})
	}
}

func TestParseSubscriberName_CountsGraphemesNotBytes(t *testing.T) {
	// 256 two-byte runes are still 256 graphemes.
	_, err := ParseSubscriberName(strings.Repeat("é", 256))
	assert.NoError(t, err)
}
