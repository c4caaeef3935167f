package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubscriberEmail_Valid(t *testing.T) {
	cases := []string{
		"ursula_le_guin@gmail.com",
		"a@b.co",
		"first.last@sub.domain.org",
	}
	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			e, err := ParseSubscriberEmail(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, e.String())
		})
	}
}

func TestParseSubscriberEmail_Invalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"missing at", "ursula.gmail.com"},
		{"missing local part", "@gmail.com"},
		{"missing domain", "ursula@"},
		{"domain without dot", "ursula@gmail"},
		{"domain starting with dot", "ursula@.com"},
		{"domain ending with dot", "ursula@gmail."},
		{"two at signs", "ursula@le@guin.com"},
		{"embedded space", "ursula le guin@gmail.com"},
		{"embedded newline", "ursula\n@gmail.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSubscriberEmail(tc.raw)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "email", verr.Field)
		})
	}
}
