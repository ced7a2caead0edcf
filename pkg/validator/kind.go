package validator

// Kind identifies the constraint family of a rule.
type Kind string

// Built-in rule kinds.
const (
	KindRequired  Kind = "required"
	KindMinLength Kind = "minLength"
	KindMaxLength Kind = "maxLength"
	KindEmail     Kind = "email"
	KindRange     Kind = "range"
	KindPattern   Kind = "pattern"
	KindUUID      Kind = "uuid"
)

// translationKeys follow the validation.<snake_case> convention used by the
// bundled message catalogs.
var translationKeys = map[Kind]string{
	KindRequired:  "validation.required",
	KindMinLength: "validation.min_length",
	KindMaxLength: "validation.max_length",
	KindEmail:     "validation.email",
	KindRange:     "validation.range",
	KindPattern:   "validation.pattern",
	KindUUID:      "validation.uuid",
}

// TranslationKey returns the message catalog key for the kind.
func (k Kind) TranslationKey() string {
	if key, ok := translationKeys[k]; ok {
		return key
	}
	return "validation." + string(k)
}

// IsBuiltin reports whether the kind ships with the package.
func (k Kind) IsBuiltin() bool {
	_, ok := translationKeys[k]
	return ok
}
