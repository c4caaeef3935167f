package valueobject

// ValidationError reports why a raw input could not be turned into a value
// object. Field names the offending form field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}
