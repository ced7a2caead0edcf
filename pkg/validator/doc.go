// Package validator validates values against ordered rule sets registered
// per (type, property) pair.
//
// Three pieces cooperate:
//
//   - Registry stores rule sets. Rules are appended in declaration order and
//     never replaced. Lookups include rules inherited from ancestor types
//     declared with Extend.
//   - Evaluator decides whether one value satisfies one rule. Every check is
//     type guarded: a number checked against minLength fails instead of
//     panicking, so malformed input always surfaces as a validation error.
//   - Validator walks an instance's properties, evaluates every rule and
//     collects failures into a Result.
//
// # Registering rules
//
// Rules are attached with explicit calls during initialisation:
//
//	reg := validator.NewRegistry()
//	validator.Register[User](reg).
//		Field("name", validator.Required(), validator.MinLength(2), validator.MaxLength(50)).
//		Field("email", validator.Required(), validator.Email())
//
// or declared with struct tags and registered once:
//
//	type User struct {
//		Name string `json:"name" validate:"required;minLength:2;maxLength:50"`
//	}
//	validator.MustRegisterStruct[User](reg)
//
// Property names come from the json tag when present, the field name
// otherwise.
//
// # Validating
//
//	v := validator.New(validator.WithRegistry(reg))
//	res := v.Validate(User{Name: ""})
//	// res.Valid == false
//	// res.Errors[0].Message == "name is required"
//	// res.Errors[1].Message == "name must be at least 2 characters"
//
// Validation is fail-slow: every rule of every property runs and all
// failures are reported, properties in declaration order and rules in
// registration order. WithFailFast stops at the first failure per property.
//
// # Rule kinds
//
//	required   not absent, not nil, not ""
//	minLength  text with at least n characters
//	maxLength  text with at most n characters
//	email      text matching ^[^\s@]+@[^\s@]+\.[^\s@]+$
//	range      number within [min, max]
//	pattern    text matching the expression
//	uuid       text holding a UUID
//
// Lengths count characters of the NFC-normalised text. Rules of kinds the
// evaluator does not know pass unless WithStrictKinds is set; custom kinds
// are added with Evaluator.Register.
//
// # Messages
//
// Rules without a message get a default such as "email must be a valid
// email address". Default messages carry a translation key
// (validation.required, validation.min_length, ...) so ValidationErrors.Translate
// or WithTranslator can localise them. Messages set with WithMessage are
// left as they are.
package validator
