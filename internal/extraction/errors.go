package extraction

import "fmt"

// ValidationError reports a value that was recognized in a message but
// rejected by a bounds or format check. Hint carries an example of the
// expected format so the conversation layer can echo it when re-prompting.
type ValidationError struct {
	Field string
	Value string
	Hint  string
}

func (e *ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("invalid %s %q, expected something like %q", e.Field, e.Value, e.Hint)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}
