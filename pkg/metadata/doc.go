// Package metadata provides an explicit key-value metadata store attached to
// (target, property) pairs, with inheritance resolved through declared parent
// links instead of runtime type information.
//
// A target is a type name (see validator.TypeName), a property is a field
// name, and the empty property addresses metadata attached to the target
// itself. Values are stored as-is; the store never copies or inspects them.
//
// # Usage
//
//	store := metadata.New()
//	store.Define("validation:rules", rules, "app.User", "email")
//	store.Extend("app.Admin", "app.User")
//
//	v, ok := store.Get("validation:rules", "app.Admin", "email") // inherited
//	_, own := store.GetOwn("validation:rules", "app.Admin", "email") // false
//
// # Inheritance
//
// Get resolves the target's own entry first and then walks ancestors nearest
// first, so a derived type shadows its parents. Collect returns every entry
// along the chain instead, root-most ancestor first, which is what callers
// that accumulate values (such as rule sets) need.
//
// Several parents may be declared for one target, matching Go struct
// embedding. Cycles in parent links are tolerated.
//
// # Concurrency
//
// All methods are safe for concurrent use. The intended pattern is to
// populate the store during program initialisation and read from it
// afterwards.
package metadata
