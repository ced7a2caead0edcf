package validator

import (
	"encoding/json"
	"reflect"
	"regexp"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// CheckFunc reports whether value satisfies rule.
// Implementations must not panic on unexpected value types.
type CheckFunc func(value any, rule Rule) bool

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var jsonNumberType = reflect.TypeFor[json.Number]()

// Evaluator maps rule kinds to checks.
// Built-in kinds are always present; custom kinds can be added with Register.
type Evaluator struct {
	mu     sync.RWMutex
	checks map[Kind]CheckFunc
}

// NewEvaluator returns an evaluator with the built-in kinds registered.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		checks: map[Kind]CheckFunc{
			KindRequired:  checkRequired,
			KindMinLength: checkMinLength,
			KindMaxLength: checkMaxLength,
			KindEmail:     checkEmail,
			KindRange:     checkRange,
			KindPattern:   checkPattern,
			KindUUID:      checkUUID,
		},
	}
}

var defaultEvaluator = NewEvaluator()

// Evaluate checks value against rule using the built-in kinds.
func Evaluate(value any, rule Rule) bool {
	return defaultEvaluator.Evaluate(value, rule)
}

// Register adds or replaces the check for kind. Panics if fn is nil.
func (e *Evaluator) Register(kind Kind, fn CheckFunc) {
	if fn == nil {
		panic("validator: CheckFunc for kind " + string(kind) + " cannot be nil")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.checks[kind] = fn
}

// Known reports whether kind has a registered check.
func (e *Evaluator) Known(kind Kind) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.checks[kind]
	return ok
}

// Evaluate reports whether value satisfies rule.
// Rules of unknown kinds pass.
func (e *Evaluator) Evaluate(value any, rule Rule) bool {
	e.mu.RLock()
	fn, ok := e.checks[rule.Kind]
	e.mu.RUnlock()
	if !ok {
		return true
	}
	return fn(value, rule)
}

func checkRequired(value any, _ Rule) bool {
	rv, ok := indirect(value)
	if !ok {
		return false
	}
	if rv.Kind() == reflect.String {
		return rv.String() != ""
	}
	return true
}

func checkMinLength(value any, rule Rule) bool {
	s, ok := textual(value)
	return ok && textLength(s) >= rule.Length
}

func checkMaxLength(value any, rule Rule) bool {
	s, ok := textual(value)
	return ok && textLength(s) <= rule.Length
}

func checkEmail(value any, _ Rule) bool {
	s, ok := textual(value)
	return ok && emailRegex.MatchString(s)
}

func checkRange(value any, rule Rule) bool {
	n, ok := numeric(value)
	return ok && rule.Min <= n && n <= rule.Max
}

func checkPattern(value any, rule Rule) bool {
	s, ok := textual(value)
	return ok && rule.Pattern != nil && rule.Pattern.MatchString(s)
}

func checkUUID(value any, _ Rule) bool {
	s, ok := textual(value)
	return ok && uuid.Validate(s) == nil
}

// indirect unwraps pointers and interfaces. It reports false for values
// that are absent or nil.
func indirect(value any) (reflect.Value, bool) {
	rv := reflect.ValueOf(value)
	for rv.IsValid() {
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface:
			if rv.IsNil() {
				return reflect.Value{}, false
			}
			rv = rv.Elem()
			continue
		case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if rv.IsNil() {
				return reflect.Value{}, false
			}
		}
		return rv, true
	}
	return reflect.Value{}, false
}

func textual(value any) (string, bool) {
	rv, ok := indirect(value)
	if !ok || rv.Kind() != reflect.String || rv.Type() == jsonNumberType {
		return "", false
	}
	return rv.String(), true
}

func numeric(value any) (float64, bool) {
	rv, ok := indirect(value)
	if !ok {
		return 0, false
	}
	if rv.Type() == jsonNumberType {
		f, err := json.Number(rv.String()).Float64()
		return f, err == nil
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// textLength counts characters of the NFC form so composed and decomposed
// spellings of the same text measure the same.
func textLength(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}
