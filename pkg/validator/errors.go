package validator

import "errors"

var (
	// ErrInvalidPattern is returned when a pattern rule cannot be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidTag is returned when a validate struct tag cannot be parsed.
	ErrInvalidTag = errors.New("invalid validate tag")

	// ErrNotStruct is returned when struct registration is given a non-struct type.
	ErrNotStruct = errors.New("type is not a struct")

	// ErrUnknownKind is reported for rules whose kind has no registered check.
	ErrUnknownKind = errors.New("unknown rule kind")
)
