package schema

// types.go has the lookup and traversal helpers for types, fields and type references

import (
	"fmt"
	"strings"
)

const (
	KindObject  = "OBJECT"
	KindList    = "LIST"
	KindNonNull = "NON_NULL"

	defaultQuery    = "Query"
	defaultMutation = "Mutation"
)

// TypeMap is an index of the types of a schema by name.  The values point into the schema (they are not copies).
type TypeMap map[string]*Type

// TypeMap creates an index of the types by name.  If 2 types have the same name the last one wins.
func (s *Schema) TypeMap() TypeMap {
	r := make(TypeMap, len(s.Types))
	for i := range s.Types {
		r[s.Types[i].Name] = &s.Types[i]
	}
	return r
}

// FilterTypeMap is like TypeMap but only includes types of one kind (eg "OBJECT")
func (s *Schema) FilterTypeMap(kind string) TypeMap {
	r := make(TypeMap)
	for i := range s.Types {
		if s.Types[i].Kind == kind {
			r[s.Types[i].Name] = &s.Types[i]
		}
	}
	return r
}

// RootNames returns the names of the query and mutation root types, in that order.
// The names are taken from queryType and mutationType if the introspection result has them.
func (s *Schema) RootNames() []string {
	return []string{rootName(s.QueryType, defaultQuery), rootName(s.MutationType, defaultMutation)}
}

func rootName(ref *TypeRef, def string) string {
	if ref == nil || ref.Name == nil || *ref.Name == "" {
		return def
	}
	return *ref.Name
}

// IsObject is true for an object type - the only kind of type that the search goes through
func (t *Type) IsObject() bool {
	return t.Kind == KindObject
}

// FieldMap returns the type's fields by name (an empty map if the type has no fields)
func (t *Type) FieldMap() map[string]*Field {
	r := make(map[string]*Field, len(t.Fields))
	for i := range t.Fields {
		r[t.Fields[i].Name] = &t.Fields[i]
	}
	return r
}

// GetField finds a field by name, or if containing is true the first field (in the order
// they are declared) with a name that contains name.  It returns nil if there is no such field.
func (t *Type) GetField(name string, containing bool) *Field {
	for i := range t.Fields {
		if containing && strings.Contains(t.Fields[i].Name, name) || t.Fields[i].Name == name {
			return &t.Fields[i]
		}
	}
	return nil
}

// IsRelay checks if the type is part of relay pagination (a connection, edge or page info type)
// rather than a type of the domain being modelled.  It's a heuristic based on names.
func (t *Type) IsRelay() bool {
	if len(t.Fields) == 0 {
		return false
	}
	names := make(map[string]struct{}, len(t.Fields))
	for _, f := range t.Fields {
		names[f.Name] = struct{}{}
	}
	has := func(a, b string) bool {
		_, okA := names[a]
		_, okB := names[b]
		return okA && okB
	}

	switch {
	case t.Name == "PageInfo" && has("hasNextPage", "hasPreviousPage"):
		return true
	case strings.HasSuffix(t.Name, "Connection") && has("edges", "pageInfo"):
		return true
	case strings.HasSuffix(t.Name, "Edge") && has("cursor", "node"):
		return true
	}
	return false
}

// Deepest unwraps any LIST and NON_NULL wrappers and returns (a copy of) the innermost reference
func (r TypeRef) Deepest() TypeRef {
	for r.OfType != nil {
		r = *r.OfType
	}
	return r
}

// IsObject checks the kind of this reference (normally called on the result of Deepest)
func (r TypeRef) IsObject() bool {
	return r.Kind == KindObject
}

// TypeName returns the name of the field's type (after unwrapping lists and non-nulls).
// A field whose type has no name means the introspection result is broken, so
// ErrInvalidSchema is returned which callers should treat as fatal.
func (f *Field) TypeName() (string, error) {
	deepest := f.Type.Deepest()
	if deepest.Name == nil || *deepest.Name == "" {
		return "", fmt.Errorf("%w: field %s doesn't have a type", ErrInvalidSchema, f.Name)
	}
	return *deepest.Name, nil
}
