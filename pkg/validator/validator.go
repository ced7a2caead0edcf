package validator

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// Validator checks instances against the rules in a registry.
// It never modifies the instance or the registry.
type Validator struct {
	registry   *Registry
	evaluator  *Evaluator
	logger     *slog.Logger
	strict     bool
	failFast   bool
	translator Translator
	lang       string
}

// Option configures a Validator.
type Option func(*Validator)

// WithRegistry sets the rule registry. Nil keeps DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(v *Validator) {
		if r != nil {
			v.registry = r
		}
	}
}

// WithEvaluator sets the evaluator, typically one with custom kinds.
func WithEvaluator(e *Evaluator) Option {
	return func(v *Validator) {
		if e != nil {
			v.evaluator = e
		}
	}
}

// WithLogger sets the logger. Validation is silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithStrictKinds makes rules of unknown kinds fail instead of pass.
func WithStrictKinds(strict bool) Option {
	return func(v *Validator) { v.strict = strict }
}

// WithFailFast stops evaluating a property's rules after its first failure.
// Other properties are still validated.
func WithFailFast(failFast bool) Option {
	return func(v *Validator) { v.failFast = failFast }
}

// WithTranslator translates default messages into lang.
func WithTranslator(tr Translator, lang string) Option {
	return func(v *Validator) {
		v.translator = tr
		v.lang = lang
	}
}

// New returns a Validator. Without options it uses DefaultRegistry, the
// built-in kinds, permissive handling of unknown kinds and full reports.
func New(opts ...Option) *Validator {
	v := &Validator{
		registry:  defaultRegistry,
		evaluator: defaultEvaluator,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Registry returns the registry the validator reads from.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// Validate runs every rule of every property of instance and reports all
// failures in property order, then rule order.
func (v *Validator) Validate(instance any) Result {
	target, props := v.properties(instance)

	errs := ValidationErrors{}
	for _, p := range props {
		errs = append(errs, v.check(target, p)...)
	}

	v.logger.Debug("validated instance",
		logger.Type(target),
		logger.Count("errors", len(errs)),
	)
	return newResult(v.translate(errs))
}

// ValidateProperty runs the rules of a single property.
// Unknown properties are validated as absent values.
func (v *Validator) ValidateProperty(instance any, name string) ValidationErrors {
	target, props := v.properties(instance)

	p := property{name: name}
	for _, candidate := range props {
		if candidate.name == name {
			p = candidate
			break
		}
	}

	errs := v.check(target, p)
	if errs == nil {
		errs = ValidationErrors{}
	}
	return v.translate(errs)
}

// GetValidationRules returns every property's rules for target, which is
// either a type name or an instance.
func (v *Validator) GetValidationRules(target any) map[string]RuleSet {
	name, ok := target.(string)
	if !ok {
		name = TypeNameOf(target)
	}
	return v.registry.Rules(name)
}

// properties returns the instance's declared properties followed by any
// registered property the instance does not declare.
func (v *Validator) properties(instance any) (string, []property) {
	target, props := introspect(instance)
	for _, name := range v.registry.Properties(target) {
		if !hasProperty(props, name) {
			props = append(props, property{name: name})
		}
	}
	return target, props
}

func (v *Validator) check(target string, p property) ValidationErrors {
	var errs ValidationErrors
	for _, rule := range v.registry.GetRules(target, p.name) {
		if !v.evaluator.Known(rule.Kind) {
			if !v.strict {
				v.logger.Debug("skipping rule of unknown kind",
					logger.Type(target),
					logger.Property(p.name),
					logger.Kind(string(rule.Kind)),
				)
				continue
			}
			v.logger.Error("rule of unknown kind failed closed",
				logger.Type(target),
				logger.Property(p.name),
				logger.Kind(string(rule.Kind)),
				logger.Error(ErrUnknownKind),
			)
			errs.Add(newValidationError(p, rule))
		} else if !v.evaluator.Evaluate(p.value, rule) {
			errs.Add(newValidationError(p, rule))
		} else {
			continue
		}

		if v.failFast {
			break
		}
	}
	return errs
}

func newValidationError(p property, rule Rule) ValidationError {
	err := ValidationError{
		Property: p.name,
		Message:  rule.Message,
		Value:    p.value,
		Kind:     rule.Kind,
	}
	if rule.Message == "" {
		err.Message = rule.DefaultMessage(p.name)
	}
	if rule.defaulted || rule.Message == "" {
		err.TranslationKey = rule.Kind.TranslationKey()
		err.TranslationValues = rule.TranslationValues(p.name)
	}
	return err
}

func (v *Validator) translate(errs ValidationErrors) ValidationErrors {
	if v.translator == nil || len(errs) == 0 {
		return errs
	}
	return errs.Translate(v.translator, v.lang)
}
