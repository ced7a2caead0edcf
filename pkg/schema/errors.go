package schema

import "errors"

var (
	// ErrUnsupportedFormat is returned for rule files that are neither YAML nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported schema format")

	// ErrFailedToReadFile is returned when a rule file cannot be read.
	ErrFailedToReadFile = errors.New("failed to read schema file")

	// ErrFailedToParse is returned when rule file content cannot be decoded.
	ErrFailedToParse = errors.New("failed to parse schema")

	// ErrInvalidSchema is returned for structurally invalid rule files.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrInvalidRule is returned for rules with missing or bad parameters.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrParsingCancelled is returned when the context ends before parsing.
	ErrParsingCancelled = errors.New("schema parsing cancelled")

	// ErrInvalidDocument is returned when a document is not a JSON object.
	ErrInvalidDocument = errors.New("invalid document")
)
