// internal/services/errors.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ateliermarket/storefront-backend/internal/utils"
)

// ErrProductNotFound is returned when an operation targets an ID that does
// not exist in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ValidationFailedError reports every field that failed input validation.
type ValidationFailedError struct {
	Fields []utils.FieldError
}

func (e *ValidationFailedError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return "invalid product data: " + strings.Join(names, ", ")
}

// InvalidImageError enumerates every image entry that failed validation.
// A single bad entry rejects the whole write.
type InvalidImageError struct {
	Entries []string
}

func (e *InvalidImageError) Error() string {
	return fmt.Sprintf("invalid image entries: %s", strings.Join(e.Entries, ", "))
}

// ConversionError is returned when a currency code is unknown to the rate source.
type ConversionError struct {
	Code string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("unknown currency code: %s", e.Code)
}
