package mailer

// SecretString holds the provider API credential. It has no implicit string
// conversion: fmt verbs, logs and JSON all see the redaction marker, and the
// raw value is only reachable through Reveal at the authentication call site.
type SecretString struct {
	value string
}

func NewSecretString(value string) SecretString {
	return SecretString{value: value}
}

// Reveal returns the underlying secret. Call it only to authenticate an
// outbound request.
func (s SecretString) Reveal() string {
	return s.value
}

func (s SecretString) String() string {
	return "[redacted]"
}

func (s SecretString) GoString() string {
	return "mailer.SecretString{value:\"[redacted]\"}"
}

func (s SecretString) MarshalJSON() ([]byte, error) {
	return []byte(`"[redacted]"`), nil
}
