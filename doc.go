// Package rulekit validates values against rules declared per type and
// property.
//
// Rules live in a registry keyed by (type, property). Types may extend
// other types and inherit their rules, root-most ancestor first. A
// validator walks an instance's properties, evaluates each rule and
// reports every failure in property order, then rule order.
//
// Packages:
//
//   - pkg/validator: rules, registry, evaluator and validator
//   - pkg/metadata: the inheritance-aware key-value store behind the registry
//   - pkg/schema: YAML and JSON rule files, and JSON documents as instances
//   - pkg/i18n: message catalogs used to translate default messages
//   - pkg/api: the HTTP surface, served by pkg/httpserver
//   - pkg/config, pkg/logger, pkg/environment: configuration and logging
//
// Basic Usage:
//
//	type User struct {
//		Name  string `json:"name" validate:"required;minLength:2"`
//		Email string `json:"email" validate:"required;email"`
//	}
//
//	reg := validator.NewRegistry()
//	validator.MustRegisterStruct[User](reg)
//
//	v := validator.New(validator.WithRegistry(reg))
//	res := v.Validate(User{Name: "A"})
//	// res.Valid == false
//	// res.Errors.Get("name") == []string{"name must be at least 2 characters"}
//
// The same rules can be declared without struct tags:
//
//	validator.Register[User](reg).
//		Field("name", validator.Required(), validator.MinLength(2)).
//		Field("email", validator.Required(), validator.Email())
//
// The rulekit command validates JSON documents from the command line and
// serves the same over HTTP; see cmd/rulekit.
package rulekit
