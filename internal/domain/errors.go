package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, arrival before departure).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// FieldErrors maps a draft field name (departure, arrival, portOfLoading,
// portOfDischarge, vessel, unitTypes) to a human-readable message. The same
// shape is produced by the client core and the server-side validation mirror,
// so the creation form can render either source next to the offending input.
type FieldErrors map[string]string

// Error renders the map as "field: message" pairs in field order.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + fe[f]
	}
	return strings.Join(parts, "; ")
}

// ValidationError carries a FieldErrors map through an error return while
// remaining matchable with errors.Is(err, ErrValidation).
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.Fields.Error())
}

// Is makes errors.Is(err, domain.ErrValidation) true for wrapped instances.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError wraps a non-empty FieldErrors map. Returns nil for an
// empty map so callers can write `return domain.NewValidationError(fe)`.
func NewValidationError(fe FieldErrors) error {
	if len(fe) == 0 {
		return nil
	}
	return &ValidationError{Fields: fe}
}
