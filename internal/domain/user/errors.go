package user

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps payload field names to validation messages. It is
// returned as a single error so no write happens while any field is bad.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// TakenError builds the uniqueness failure for a single field.
func TakenError(f UniqueField) FieldErrors {
	return FieldErrors{string(f): string(f) + " is already taken"}
}
