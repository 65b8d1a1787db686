package validator

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FromBindingError extracts field->failed-tag pairs from a gin binding
// error, or nil when the error is not a validation failure (malformed JSON,
// wrong types).
func FromBindingError(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

// Summarize flattens a field map into one line for error payloads. Fields
// are sorted so the message is stable across requests.
func Summarize(fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for field := range fields {
		names = append(names, field)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, field := range names {
		parts = append(parts, field+": "+fields[field])
	}
	return strings.Join(parts, "; ")
}
