package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Rule describes one constraint attached to one property.
// Only the parameter fields relevant to Kind are meaningful.
type Rule struct {
	Kind    Kind
	Message string

	// Length is the bound for minLength and maxLength.
	Length int
	// Min and Max are the inclusive bounds for range.
	Min, Max float64
	// Pattern is the expression for pattern.
	Pattern *regexp.Regexp
	// Args carries raw parameters for custom kinds.
	Args []string

	// defaulted marks messages filled in by the registry, which are the
	// only ones eligible for translation.
	defaulted bool
}

// RuleSet is an ordered sequence of rules for one property.
type RuleSet []Rule

// Required fails for absent values, nil values and the empty string.
func Required() Rule {
	return Rule{Kind: KindRequired}
}

// MinLength fails for non-text values and text shorter than n characters.
func MinLength(n int) Rule {
	return Rule{Kind: KindMinLength, Length: n}
}

// MaxLength fails for non-text values and text longer than n characters.
func MaxLength(n int) Rule {
	return Rule{Kind: KindMaxLength, Length: n}
}

// Email fails for non-text values and text that does not look like an address.
func Email() Rule {
	return Rule{Kind: KindEmail}
}

// Range fails for non-numeric values and numbers outside [min, max].
func Range(min, max float64) Rule {
	return Rule{Kind: KindRange, Min: min, Max: max}
}

// Pattern fails for non-text values and text not matching expr.
func Pattern(expr string) (Rule, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Rule{}, errors.Join(ErrInvalidPattern, err)
	}
	return Rule{Kind: KindPattern, Pattern: re}, nil
}

// MustPattern is like Pattern but panics if expr does not compile.
func MustPattern(expr string) Rule {
	r, err := Pattern(expr)
	if err != nil {
		panic(fmt.Sprintf("validator: %v", err))
	}
	return r
}

// UUID fails for non-text values and text that is not a UUID.
func UUID() Rule {
	return Rule{Kind: KindUUID}
}

// Custom builds a rule of a caller-defined kind. The kind needs a check
// registered on the evaluator, otherwise it always passes.
func Custom(kind Kind, args ...string) Rule {
	return Rule{Kind: kind, Args: args}
}

// WithMessage returns a copy of the rule with a fixed failure message.
func (r Rule) WithMessage(msg string) Rule {
	r.Message = msg
	r.defaulted = false
	return r
}

func (r Rule) withDefaultMessage(property string) Rule {
	if r.Message != "" {
		return r
	}
	r.Message = r.DefaultMessage(property)
	r.defaulted = true
	return r
}

// DefaultMessage returns the message used when none was supplied.
func (r Rule) DefaultMessage(property string) string {
	switch r.Kind {
	case KindRequired:
		return property + " is required"
	case KindMinLength:
		return fmt.Sprintf("%s must be at least %d characters", property, r.Length)
	case KindMaxLength:
		return fmt.Sprintf("%s must be at most %d characters", property, r.Length)
	case KindEmail:
		return property + " must be a valid email address"
	case KindRange:
		return fmt.Sprintf("%s must be between %s and %s", property, formatFloat(r.Min), formatFloat(r.Max))
	case KindPattern:
		return property + " has an invalid format"
	case KindUUID:
		return property + " must be a valid UUID"
	default:
		return property + " is invalid"
	}
}

// TranslationValues returns the placeholders available to translated
// messages for this rule.
func (r Rule) TranslationValues(property string) map[string]any {
	values := map[string]any{"field": property}
	switch r.Kind {
	case KindMinLength:
		values["min"] = r.Length
	case KindMaxLength:
		values["max"] = r.Length
	case KindRange:
		values["min"] = formatFloat(r.Min)
		values["max"] = formatFloat(r.Max)
	case KindPattern:
		if r.Pattern != nil {
			values["pattern"] = r.Pattern.String()
		}
	}
	return values
}

type ruleJSON struct {
	Kind    Kind     `json:"kind"`
	Message string   `json:"message,omitempty"`
	Length  *int     `json:"length,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Pattern string   `json:"pattern,omitempty"`
	Args    []string `json:"args,omitempty"`
}

// MarshalJSON renders only the parameters that belong to the rule's kind.
func (r Rule) MarshalJSON() ([]byte, error) {
	out := ruleJSON{Kind: r.Kind, Message: r.Message, Args: r.Args}
	switch r.Kind {
	case KindMinLength, KindMaxLength:
		out.Length = &r.Length
	case KindRange:
		out.Min, out.Max = &r.Min, &r.Max
	case KindPattern:
		if r.Pattern != nil {
			out.Pattern = r.Pattern.String()
		}
	}
	return json.Marshal(out)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
