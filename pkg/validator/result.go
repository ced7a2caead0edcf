package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes one failed rule on one property.
type ValidationError struct {
	Property          string         `json:"property"`
	Message           string         `json:"message"`
	Value             any            `json:"value"`
	Kind              Kind           `json:"kind"`
	TranslationKey    string         `json:"-"`
	TranslationValues map[string]any `json:"-"`
}

// ValidationErrors is an ordered collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Property, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(property string) bool {
	for _, err := range ve {
		if err.Property == property {
			return true
		}
	}
	return false
}

// Get returns the messages reported for property, in order.
func (ve ValidationErrors) Get(property string) []string {
	var messages []string
	for _, err := range ve {
		if err.Property == property {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(property string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Property == property {
			errs = append(errs, err)
		}
	}
	return errs
}

// Fields returns the distinct failing properties in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Property] {
			fields = append(fields, err.Property)
			seen[err.Property] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Result is the outcome of validating one instance.
type Result struct {
	Valid  bool             `json:"valid"`
	Errors ValidationErrors `json:"errors"`
}

func newResult(errs ValidationErrors) Result {
	if errs == nil {
		errs = ValidationErrors{}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// Err returns nil for a valid result and the errors otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return r.Errors
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
