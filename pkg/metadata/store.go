package metadata

import (
	"slices"
	"sync"
)

type entryKey struct {
	target   string
	property string
}

// entries keeps metadata keys in definition order.
type entries struct {
	keys   []string
	values map[string]any
}

// Store holds metadata for (target, property) pairs.
// The zero value is not usable; create stores with New.
type Store struct {
	mu         sync.RWMutex
	data       map[entryKey]*entries
	properties map[string][]string
	parents    map[string][]string
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		data:       make(map[entryKey]*entries),
		properties: make(map[string][]string),
		parents:    make(map[string][]string),
	}
}

// Define sets the value for key on (target, property), replacing any
// previous own value.
func (s *Store) Define(key string, value any, target, property string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ek := entryKey{target: target, property: property}
	e, ok := s.data[ek]
	if !ok {
		e = &entries{values: make(map[string]any)}
		s.data[ek] = e
		if property != "" {
			s.properties[target] = append(s.properties[target], property)
		}
	}
	if _, exists := e.values[key]; !exists {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

// Extend declares parents as ancestors of target. Repeated parents are
// ignored, and a target is never recorded as its own parent.
func (s *Store) Extend(target string, parents ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range parents {
		if p == "" || p == target || slices.Contains(s.parents[target], p) {
			continue
		}
		s.parents[target] = append(s.parents[target], p)
	}
}

// Parents returns the direct parents of target in declaration order.
func (s *Store) Parents(target string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.parents[target])
}

// Ancestors returns every ancestor of target, nearest first, depth-first
// over declared parents. Each ancestor appears once.
func (s *Store) Ancestors(target string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ancestors(target)
}

func (s *Store) ancestors(target string) []string {
	var out []string
	seen := map[string]bool{target: true}

	var walk func(t string)
	walk = func(t string) {
		for _, p := range s.parents[t] {
			if seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
			walk(p)
		}
	}
	walk(target)
	return out
}

// GetOwn returns the value defined directly on (target, property).
func (s *Store) GetOwn(key, target, property string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getOwn(key, target, property)
}

func (s *Store) getOwn(key, target, property string) (any, bool) {
	e, ok := s.data[entryKey{target: target, property: property}]
	if !ok {
		return nil, false
	}
	v, ok := e.values[key]
	return v, ok
}

// Get returns the value for key on (target, property), falling back to the
// nearest ancestor that defines it.
func (s *Store) Get(key, target, property string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.getOwn(key, target, property); ok {
		return v, true
	}
	for _, a := range s.ancestors(target) {
		if v, ok := s.getOwn(key, a, property); ok {
			return v, true
		}
	}
	return nil, false
}

// Collect returns every value for key on property along the ancestor chain,
// root-most ancestor first and the target's own value last.
func (s *Store) Collect(key, target, property string) []any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chain := s.ancestors(target)
	slices.Reverse(chain)
	chain = append(chain, target)

	var out []any
	for _, t := range chain {
		if v, ok := s.getOwn(key, t, property); ok {
			out = append(out, v)
		}
	}
	return out
}

// HasOwn reports whether key is defined directly on (target, property).
func (s *Store) HasOwn(key, target, property string) bool {
	_, ok := s.GetOwn(key, target, property)
	return ok
}

// Has reports whether key is defined on (target, property) or inherited.
func (s *Store) Has(key, target, property string) bool {
	_, ok := s.Get(key, target, property)
	return ok
}

// Delete removes the own value for key on (target, property).
// Inherited values are not affected. Reports whether a value was removed.
func (s *Store) Delete(key, target, property string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[entryKey{target: target, property: property}]
	if !ok {
		return false
	}
	if _, ok := e.values[key]; !ok {
		return false
	}
	delete(e.values, key)
	e.keys = slices.DeleteFunc(e.keys, func(k string) bool { return k == key })
	return true
}

// OwnKeys returns the keys defined directly on (target, property) in
// definition order.
func (s *Store) OwnKeys(target, property string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[entryKey{target: target, property: property}]
	if !ok {
		return nil
	}
	return slices.Clone(e.keys)
}

// Keys returns own keys followed by inherited keys, without duplicates.
func (s *Store) Keys(target, property string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for _, t := range append([]string{target}, s.ancestors(target)...) {
		e, ok := s.data[entryKey{target: t, property: property}]
		if !ok {
			continue
		}
		for _, k := range e.keys {
			if !slices.Contains(out, k) {
				out = append(out, k)
			}
		}
	}
	return out
}

// OwnProperties returns the properties of target that carry metadata,
// in first-definition order.
func (s *Store) OwnProperties(target string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.properties[target])
}

// Properties returns properties with metadata on the root-most ancestor
// first, down to the target itself, without duplicates.
func (s *Store) Properties(target string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chain := s.ancestors(target)
	slices.Reverse(chain)
	chain = append(chain, target)

	var out []string
	for _, t := range chain {
		for _, p := range s.properties[t] {
			if !slices.Contains(out, p) {
				out = append(out, p)
			}
		}
	}
	return out
}
