package valueobject

import "strings"

// SubscriberEmail is a validated email address. The zero value is invalid;
// ParseSubscriberEmail is the only constructor.
type SubscriberEmail struct {
	value string
}

// ParseSubscriberEmail validates raw form input against a pragmatic email
// grammar: exactly one '@', a non-empty local part, a domain containing at
// least one dot, and no whitespace anywhere.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	invalid := &ValidationError{Field: "email", Reason: "is not a valid email address"}

	if raw == "" {
		return SubscriberEmail{}, &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if strings.ContainsAny(raw, " \t\r\n") {
		return SubscriberEmail{}, invalid
	}
	at := strings.Index(raw, "@")
	if at <= 0 || at != strings.LastIndex(raw, "@") {
		return SubscriberEmail{}, invalid
	}
	domain := raw[at+1:]
	if domain == "" {
		return SubscriberEmail{}, invalid
	}
	dot := strings.Index(domain, ".")
	// The dot must separate non-empty labels.
	if dot <= 0 || strings.HasSuffix(domain, ".") {
		return SubscriberEmail{}, invalid
	}
	return SubscriberEmail{value: raw}, nil
}

func (e SubscriberEmail) String() string {
	return e.value
}
