package schema

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Schema is the content of one rule file.
type Schema struct {
	Types []TypeDef `yaml:"types" json:"types"`
}

// TypeDef declares the rules of one named type.
type TypeDef struct {
	Name       string        `yaml:"name" json:"name"`
	Extends    []string      `yaml:"extends,omitempty" json:"extends,omitempty"`
	Properties []PropertyDef `yaml:"properties" json:"properties"`
}

// PropertyDef lists the rules of one property in evaluation order.
type PropertyDef struct {
	Name  string    `yaml:"name" json:"name"`
	Rules []RuleDef `yaml:"rules" json:"rules"`
}

// RuleDef is the file form of a validator.Rule.
type RuleDef struct {
	Kind    string   `yaml:"kind" json:"kind"`
	Message string   `yaml:"message,omitempty" json:"message,omitempty"`
	Length  *int     `yaml:"length,omitempty" json:"length,omitempty"`
	Min     *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	Pattern string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Args    []string `yaml:"args,omitempty" json:"args,omitempty"`
}

// Parse decodes a rule file. The format is picked from the extension of
// filename: .yaml, .yml or .json.
func Parse(ctx context.Context, filename string, content []byte) (*Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var (
		s   Schema
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = decodeYAML(content, &s)
	case ".json":
		err = decodeJSON(content, &s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
	if err != nil {
		return nil, errors.Join(ErrFailedToParse, fmt.Errorf("%s: %w", filename, err))
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and parses the rule file at path.
func LoadFile(ctx context.Context, path string) (*Schema, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(ctx, path, content)
}

// Validate checks names and rule parameters without registering anything.
func (s *Schema) Validate() error {
	if len(s.Types) == 0 {
		return fmt.Errorf("%w: no types declared", ErrInvalidSchema)
	}

	seen := make(map[string]bool, len(s.Types))
	for i, t := range s.Types {
		if t.Name == "" {
			return fmt.Errorf("%w: type #%d has no name", ErrInvalidSchema, i+1)
		}
		if seen[t.Name] {
			return fmt.Errorf("%w: type %q declared twice", ErrInvalidSchema, t.Name)
		}
		seen[t.Name] = true

		for _, parent := range t.Extends {
			if parent == "" || parent == t.Name {
				return fmt.Errorf("%w: type %q has an invalid parent %q", ErrInvalidSchema, t.Name, parent)
			}
		}
		for j, p := range t.Properties {
			if p.Name == "" {
				return fmt.Errorf("%w: type %q: property #%d has no name", ErrInvalidSchema, t.Name, j+1)
			}
			for _, r := range p.Rules {
				if _, err := r.Rule(); err != nil {
					return fmt.Errorf("%s.%s: %w", t.Name, p.Name, err)
				}
			}
		}
	}
	return nil
}

// Apply registers every type of the schema with reg. Nothing is registered
// when the schema is invalid.
func (s *Schema) Apply(reg *validator.Registry) error {
	if reg == nil {
		reg = validator.DefaultRegistry()
	}
	if err := s.Validate(); err != nil {
		return err
	}

	for _, t := range s.Types {
		b := validator.For(reg, t.Name)
		if len(t.Extends) > 0 {
			b.Extends(t.Extends...)
		}
		for _, p := range t.Properties {
			rules := make([]validator.Rule, 0, len(p.Rules))
			for _, r := range p.Rules {
				rule, _ := r.Rule()
				rules = append(rules, rule)
			}
			b.Field(p.Name, rules...)
		}
	}
	return nil
}

// Type returns the definition of the named type.
func (s *Schema) Type(name string) (TypeDef, bool) {
	for _, t := range s.Types {
		if t.Name == name {
			return t, true
		}
	}
	return TypeDef{}, false
}

// Names returns the declared type names in file order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.Types))
	for i, t := range s.Types {
		names[i] = t.Name
	}
	return names
}

// Rule converts the definition into a validator.Rule.
func (d RuleDef) Rule() (validator.Rule, error) {
	kind := validator.Kind(strings.TrimSpace(d.Kind))

	var rule validator.Rule
	switch kind {
	case "":
		return rule, fmt.Errorf("%w: missing kind", ErrInvalidRule)
	case validator.KindRequired:
		rule = validator.Required()
	case validator.KindEmail:
		rule = validator.Email()
	case validator.KindUUID:
		rule = validator.UUID()
	case validator.KindMinLength, validator.KindMaxLength:
		if d.Length == nil || *d.Length < 0 {
			return rule, fmt.Errorf("%w: %s needs a non-negative length", ErrInvalidRule, kind)
		}
		if kind == validator.KindMinLength {
			rule = validator.MinLength(*d.Length)
		} else {
			rule = validator.MaxLength(*d.Length)
		}
	case validator.KindRange:
		if d.Min == nil || d.Max == nil {
			return rule, fmt.Errorf("%w: range needs min and max", ErrInvalidRule)
		}
		if *d.Min > *d.Max {
			return rule, fmt.Errorf("%w: range min %v is greater than max %v", ErrInvalidRule, *d.Min, *d.Max)
		}
		rule = validator.Range(*d.Min, *d.Max)
	case validator.KindPattern:
		if d.Pattern == "" {
			return rule, fmt.Errorf("%w: pattern needs an expression", ErrInvalidRule)
		}
		var err error
		if rule, err = validator.Pattern(d.Pattern); err != nil {
			return rule, errors.Join(ErrInvalidRule, err)
		}
	default:
		rule = validator.Custom(kind, d.Args...)
	}

	if d.Message != "" {
		rule = rule.WithMessage(d.Message)
	}
	return rule, nil
}
