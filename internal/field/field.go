// Package field has the TypeField "hop" (a type plus optional field) used to describe
// paths through a GraphQL schema, and the name matching used to pick search targets.
package field

// field.go has the TypeField and Path types

import (
	"strings"
)

type (
	// TypeField is one hop of a path: the type we are in and the field we leave it by.
	// An empty FieldName means the hop is just the type (no field).
	TypeField struct {
		TypeName  string
		FieldName string
	}

	// Path is a chain of hops from a root operation type towards a target
	Path []TypeField
)

// New is a convenience for making a TypeField
func New(typeName, fieldName string) TypeField {
	return TypeField{TypeName: typeName, FieldName: fieldName}
}

// HasField returns true if the hop names a field (not just a type)
func (tf TypeField) HasField() bool {
	return tf.FieldName != ""
}

// String renders the hop as Type.field (or just Type if there is no field)
func (tf TypeField) String() string {
	if tf.FieldName == "" {
		return tf.TypeName
	}
	return tf.TypeName + "." + tf.FieldName
}

// Strings returns the rendering of every hop of the path
func (p Path) Strings() []string {
	r := make([]string, 0, len(p))
	for _, tf := range p {
		r = append(r, tf.String())
	}
	return r
}

// String joins the hops with arrows, eg "Query.user -> User.posts"
func (p Path) String() string {
	return strings.Join(p.Strings(), " -> ")
}

// Equal compares two paths hop by hop
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}
