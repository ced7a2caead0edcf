package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// RegisterStruct registers the rules declared in T's struct tags.
// It is safe to call more than once for the same type.
//
// Rules are separated by semicolons and parameters follow a colon:
//
//	type User struct {
//		Entity
//		Name  string `json:"name" validate:"required;minLength:2;maxLength:50"`
//		Email string `json:"email" validate:"required;email" message:"enter a valid email"`
//		Age   int    `json:"age" validate:"range:18,120"`
//		Slug  string `json:"slug" validate:"pattern:^[a-z0-9-]+$"`
//	}
//
// A pattern consumes the rest of the tag, so it must come last. A message
// tag replaces the message of every rule on the field. Embedded structs are
// registered too and become ancestors of T.
func RegisterStruct[T any](reg *Registry) error {
	if reg == nil {
		reg = defaultRegistry
	}
	return reg.RegisterStructType(reflect.TypeFor[T]())
}

// MustRegisterStruct is like RegisterStruct but panics on error.
func MustRegisterStruct[T any](reg *Registry) {
	if err := RegisterStruct[T](reg); err != nil {
		panic(fmt.Sprintf("validator: %v", err))
	}
}

// RegisterStructType registers the tag rules of the struct type rt.
func (r *Registry) RegisterStructType(rt reflect.Type) error {
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrNotStruct, rt)
	}

	target := typeName(rt)
	if r.markStruct(target) {
		return nil
	}

	// Tags are parsed before anything is registered.
	type fieldRules struct {
		property string
		rules    []Rule
	}
	var fields []fieldRules
	var parents []reflect.Type

	for i := range rt.NumField() {
		f := rt.Field(i)

		if f.Anonymous {
			ft := f.Type
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && f.Tag.Get("json") == "" {
				parents = append(parents, ft)
				continue
			}
		}

		tag := f.Tag.Get("validate")
		if tag == "" || tag == "-" || !f.IsExported() {
			continue
		}

		property := propertyName(f)
		if property == "-" {
			continue
		}
		rules, err := parseTag(tag)
		if err != nil {
			r.unmarkStruct(target)
			return fmt.Errorf("%s.%s: %w", rt.Name(), f.Name, err)
		}
		if msg := f.Tag.Get("message"); msg != "" {
			for i := range rules {
				rules[i] = rules[i].WithMessage(msg)
			}
		}
		fields = append(fields, fieldRules{property: property, rules: rules})
	}

	for _, pt := range parents {
		if err := r.RegisterStructType(pt); err != nil {
			r.unmarkStruct(target)
			return err
		}
		r.Extend(target, typeName(pt))
	}
	for _, f := range fields {
		r.AddRules(target, f.property, f.rules...)
	}
	return nil
}

func (r *Registry) unmarkStruct(target string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.structs, target)
}

// parseTag turns a validate tag into rules in declaration order.
func parseTag(tag string) ([]Rule, error) {
	var rules []Rule
	rest := tag
	for rest != "" {
		var part string
		part, rest, _ = strings.Cut(rest, ";")
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, param, hasParam := strings.Cut(part, ":")
		name = strings.TrimSpace(name)

		if Kind(name) == KindPattern {
			// Reattach what the semicolon split off.
			expr := param
			if rest != "" {
				expr += ";" + rest
			}
			rule, err := Pattern(expr)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidTag, err)
			}
			return append(rules, rule), nil
		}

		rule, err := parseRule(Kind(name), strings.TrimSpace(param), hasParam)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func parseRule(kind Kind, param string, hasParam bool) (Rule, error) {
	switch kind {
	case KindRequired, KindEmail, KindUUID:
		if hasParam {
			return Rule{}, fmt.Errorf("%w: %s takes no parameter", ErrInvalidTag, kind)
		}
		return Rule{Kind: kind}, nil
	case KindMinLength, KindMaxLength:
		n, err := strconv.Atoi(param)
		if err != nil || n < 0 {
			return Rule{}, fmt.Errorf("%w: %s needs a non-negative length, got %q", ErrInvalidTag, kind, param)
		}
		return Rule{Kind: kind, Length: n}, nil
	case KindRange:
		lo, hi, ok := strings.Cut(param, ",")
		if !ok {
			return Rule{}, fmt.Errorf("%w: range needs min,max, got %q", ErrInvalidTag, param)
		}
		lower, err1 := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		upper, err2 := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if err1 != nil || err2 != nil {
			return Rule{}, fmt.Errorf("%w: range needs numeric bounds, got %q", ErrInvalidTag, param)
		}
		return Range(lower, upper), nil
	case "":
		return Rule{}, fmt.Errorf("%w: empty rule name", ErrInvalidTag)
	default:
		var args []string
		if hasParam {
			for a := range strings.SplitSeq(param, ",") {
				args = append(args, strings.TrimSpace(a))
			}
		}
		return Custom(kind, args...), nil
	}
}
