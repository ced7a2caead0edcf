package validator

import (
	"reflect"
	"slices"
	"strings"
)

// Object is implemented by dynamic values that are not Go structs, such as
// decoded documents. Properties lists names in declaration order.
type Object interface {
	Properties() []string
	Property(name string) (any, bool)
}

// property is one named value of an instance. Absent properties carry a
// nil value.
type property struct {
	name    string
	value   any
	present bool
}

// introspect returns the registry key of instance and its declared
// properties in declaration order.
func introspect(instance any) (string, []property) {
	target := TypeNameOf(instance)

	if obj, ok := instance.(Object); ok {
		names := obj.Properties()
		props := make([]property, 0, len(names))
		for _, name := range names {
			v, present := obj.Property(name)
			props = append(props, property{name: name, value: v, present: present})
		}
		return target, props
	}

	rv := reflect.ValueOf(instance)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return target, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return target, nil
	}
	return target, structProperties(rv)
}

// field is a property found at an embedding depth.
type field struct {
	property
	depth int
}

// structProperties flattens embedded structs the way Go promotes fields:
// a shallower field shadows deeper ones with the same name. Output keeps
// declaration order.
func structProperties(rv reflect.Value) []property {
	var fields []field
	collectFields(rv, true, 0, map[reflect.Type]bool{rv.Type(): true}, &fields)

	shallowest := make(map[string]int, len(fields))
	for _, f := range fields {
		if d, ok := shallowest[f.name]; !ok || f.depth < d {
			shallowest[f.name] = f.depth
		}
	}

	out := make([]property, 0, len(shallowest))
	for _, f := range fields {
		if d, ok := shallowest[f.name]; ok && d == f.depth {
			out = append(out, f.property)
			delete(shallowest, f.name)
		}
	}
	return out
}

// collectFields appends the fields of rv. path holds the struct types on
// the current embedding chain so self-embedding types terminate.
func collectFields(rv reflect.Value, present bool, depth int, path map[reflect.Type]bool, out *[]field) {
	rt := rv.Type()
	for i := range rt.NumField() {
		f := rt.Field(i)
		fv := rv.Field(i)

		if f.Anonymous && f.Tag.Get("json") == "" {
			ft, embedded, ok := f.Type, fv, present
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
				if fv.IsNil() {
					embedded, ok = reflect.New(ft).Elem(), false
				} else {
					embedded = fv.Elem()
				}
			}
			if ft.Kind() == reflect.Struct {
				if path[ft] {
					continue
				}
				path[ft] = true
				collectFields(embedded, ok, depth+1, path, out)
				delete(path, ft)
				continue
			}
		}

		if !f.IsExported() || !fv.CanInterface() || f.Tag.Get("validate") == "-" {
			continue
		}
		name := propertyName(f)
		if name == "-" {
			continue
		}

		p := property{name: name, present: present}
		if present {
			p.value = fv.Interface()
		}
		*out = append(*out, field{property: p, depth: depth})
	}
}

// propertyName prefers the json tag name so rules can be registered under
// the same names clients send.
func propertyName(f reflect.StructField) string {
	if tag := f.Tag.Get("json"); tag != "" {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			return name
		}
	}
	return f.Name
}

func hasProperty(props []property, name string) bool {
	return slices.ContainsFunc(props, func(p property) bool { return p.name == name })
}
