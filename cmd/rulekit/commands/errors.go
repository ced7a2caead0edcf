package commands

import "errors"

var (
	// ErrInvalid is returned by validate when the document breaks a rule.
	// The result has already been printed.
	ErrInvalid = errors.New("document is invalid")

	ErrNoSchema    = errors.New("no rule schema given: use --schema or RULEKIT_SCHEMA")
	ErrUnknownType = errors.New("unknown type")
	ErrNoType      = errors.New("no type given: use --type")
)
