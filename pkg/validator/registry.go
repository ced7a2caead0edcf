package validator

import (
	"reflect"
	"slices"
	"sync"

	"github.com/dmitrymomot/rulekit/pkg/metadata"
)

// rulesKey is the metadata key rule sets are stored under.
const rulesKey = "validation:rules"

// Registry maps (type, property) pairs to ordered rule sets.
// Rules are only ever appended; register them during initialisation and
// read them from any number of goroutines afterwards.
type Registry struct {
	mu      sync.Mutex
	store   *metadata.Store
	structs map[string]bool
}

// NewRegistry returns an empty registry backed by its own metadata store.
func NewRegistry() *Registry {
	return NewRegistryWithStore(metadata.New())
}

// NewRegistryWithStore returns a registry that keeps its rule sets in store,
// next to any other metadata the caller defines there.
func NewRegistryWithStore(store *metadata.Store) *Registry {
	if store == nil {
		store = metadata.New()
	}
	return &Registry{store: store, structs: make(map[string]bool)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used when no registry
// is supplied.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Metadata exposes the underlying metadata store.
func (r *Registry) Metadata() *metadata.Store {
	return r.store
}

// AddRule appends rule to the rule set of (target, property), creating the
// set if needed. An empty message is replaced with the kind's default.
func (r *Registry) AddRule(target, property string, rule Rule) {
	rule = rule.withDefaultMessage(property)

	r.mu.Lock()
	defer r.mu.Unlock()

	var set RuleSet
	if v, ok := r.store.GetOwn(rulesKey, target, property); ok {
		set = v.(RuleSet)
	}
	// Copy so readers holding the previous slice never observe the append.
	next := make(RuleSet, 0, len(set)+1)
	next = append(next, set...)
	next = append(next, rule)
	r.store.Define(rulesKey, next, target, property)
}

// AddRules appends rules in order.
func (r *Registry) AddRules(target, property string, rules ...Rule) {
	for _, rule := range rules {
		r.AddRule(target, property, rule)
	}
}

// GetRules returns the rules for (target, property) including those
// inherited from ancestors: root-most ancestor first, own rules last.
// It returns nil when nothing is registered.
func (r *Registry) GetRules(target, property string) RuleSet {
	var out RuleSet
	for _, v := range r.store.Collect(rulesKey, target, property) {
		out = append(out, v.(RuleSet)...)
	}
	return out
}

// GetOwnRules returns only the rules registered on target itself.
func (r *Registry) GetOwnRules(target, property string) RuleSet {
	v, ok := r.store.GetOwn(rulesKey, target, property)
	if !ok {
		return nil
	}
	return slices.Clone(v.(RuleSet))
}

// Extend declares parents as ancestors of target, so lookups on target
// include the parents' rules.
func (r *Registry) Extend(target string, parents ...string) {
	r.store.Extend(target, parents...)
}

// Ancestors returns the ancestors of target, nearest first.
func (r *Registry) Ancestors(target string) []string {
	return r.store.Ancestors(target)
}

// Properties returns the properties of target that have rules, including
// inherited ones, root-most ancestor first.
func (r *Registry) Properties(target string) []string {
	var out []string
	for _, p := range r.store.Properties(target) {
		if len(r.GetRules(target, p)) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Rules returns every property's rule set for target.
func (r *Registry) Rules(target string) map[string]RuleSet {
	out := make(map[string]RuleSet)
	for _, p := range r.Properties(target) {
		out[p] = r.GetRules(target, p)
	}
	return out
}

// markStruct records that the struct type was registered from tags and
// reports whether it was already registered.
func (r *Registry) markStruct(target string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.structs[target] {
		return true
	}
	r.structs[target] = true
	return false
}

// TypeRules registers rules for a single type.
type TypeRules struct {
	reg    *Registry
	target string
}

// For returns a builder for target. A nil registry means DefaultRegistry.
func For(reg *Registry, target string) *TypeRules {
	if reg == nil {
		reg = defaultRegistry
	}
	return &TypeRules{reg: reg, target: target}
}

// Register returns a builder for the Go type T.
//
//	validator.Register[User](reg).
//		Field("name", validator.Required(), validator.MinLength(2)).
//		Field("email", validator.Email())
func Register[T any](reg *Registry) *TypeRules {
	return For(reg, TypeName[T]())
}

// Field appends rules to property in order.
func (b *TypeRules) Field(property string, rules ...Rule) *TypeRules {
	b.reg.AddRules(b.target, property, rules...)
	return b
}

// Extends declares parent types of the builder's type.
func (b *TypeRules) Extends(parents ...string) *TypeRules {
	b.reg.Extend(b.target, parents...)
	return b
}

// Target returns the type name the builder registers rules for.
func (b *TypeRules) Target() string {
	return b.target
}

// Extend declares Parent as an ancestor of Child.
func Extend[Child, Parent any](reg *Registry) {
	if reg == nil {
		reg = defaultRegistry
	}
	reg.Extend(TypeName[Child](), TypeName[Parent]())
}

// Typed lets dynamic values choose the type name their rules are looked
// up under.
type Typed interface {
	TypeName() string
}

// TypeName returns the registry key for the Go type T.
func TypeName[T any]() string {
	return typeName(reflect.TypeFor[T]())
}

// TypeNameOf returns the registry key for v's dynamic type.
// Values implementing Typed supply their own name.
func TypeNameOf(v any) string {
	if t, ok := v.(Typed); ok {
		return t.TypeName()
	}
	if v == nil {
		return ""
	}
	return typeName(reflect.TypeOf(v))
}

// typeName uses the package-qualified name so equally named types from
// different packages do not share rules. Pointers resolve to their element.
func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
