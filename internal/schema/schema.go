// Package schema holds the GraphQL type graph read from an introspection result (the JSON
// returned for a __schema query) and the lookups that the path search is built on.
// The model is built once and is never modified by the searches that use it.
package schema

// schema.go contains the introspection types and the functions to decode them

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidSchemaJSON is returned when the document is not JSON or doesn't have the shape of an introspection result
	ErrInvalidSchemaJSON = errors.New("invalid introspection JSON")

	// ErrInvalidSchema is for a document that decodes OK but breaks the rules of a GraphQL schema
	ErrInvalidSchema = errors.New("GraphQL schema is invalid")
)

type (
	// Root is the top-level envelope of an introspection response.
	// Data is nil when the response has "data": null (or no data at all) which we treat as an empty schema.
	Root struct {
		Data *Data `json:"data"`
	}

	Data struct {
		Schema Schema `json:"__schema"`
	}

	// Schema is the collection of all types.  The root types are optional - many introspection
	// queries don't ask for them, in which case the names Query and Mutation are assumed.
	Schema struct {
		QueryType    *TypeRef `json:"queryType,omitempty"`
		MutationType *TypeRef `json:"mutationType,omitempty"`
		Types        []Type   `json:"types"`
	}

	// Type is a named GraphQL type.  Fields is nil for scalars, enums, etc.
	Type struct {
		Name   string  `json:"name"`
		Kind   string  `json:"kind"`
		Fields []Field `json:"fields"`
	}

	Field struct {
		Name string  `json:"name"`
		Type TypeRef `json:"type"`
	}

	// TypeRef is a reference to a type which may be wrapped (LIST or NON_NULL) in which case
	// OfType is the wrapped type.  Only the innermost (deepest) reference has a name.
	TypeRef struct {
		Name   *string  `json:"name"`
		Kind   string   `json:"kind"`
		OfType *TypeRef `json:"ofType"`
	}
)

type (
	// The shape types mirror the model using pointers so that a missing member can be told
	// apart from an empty one.  Only "data", "fields", "ofType" and the name of a type
	// reference may be left out.
	shapeRoot struct {
		Data *struct {
			Schema *struct {
				Types *[]shapeType `json:"types"`
			} `json:"__schema"`
		} `json:"data"`
	}

	shapeType struct {
		Name   *string      `json:"name"`
		Kind   *string      `json:"kind"`
		Fields []shapeField `json:"fields"`
	}

	shapeField struct {
		Name *string   `json:"name"`
		Type *shapeRef `json:"type"`
	}

	shapeRef struct {
		Kind   *string   `json:"kind"`
		OfType *shapeRef `json:"ofType"`
	}
)

// Parse decodes an introspection result from JSON text.  An error wrapping ErrInvalidSchemaJSON
// is returned if the document is not JSON or if any of the required members are missing.
func Parse(document []byte) (*Root, error) {
	r := &Root{}
	if err := json.Unmarshal(document, r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchemaJSON, err)
	}
	if err := checkShape(document); err != nil {
		return nil, err
	}
	return r, nil
}

// checkShape returns an error if a required member of the introspection result is missing (or null)
func checkShape(document []byte) error {
	var root shapeRoot
	if err := json.Unmarshal(document, &root); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSchemaJSON, err)
	}
	if root.Data == nil {
		return nil // empty schema
	}
	if root.Data.Schema == nil {
		return fmt.Errorf("%w: data has no __schema", ErrInvalidSchemaJSON)
	}
	if root.Data.Schema.Types == nil {
		return fmt.Errorf("%w: __schema has no types", ErrInvalidSchemaJSON)
	}

	for i, t := range *root.Data.Schema.Types {
		if t.Name == nil {
			return fmt.Errorf("%w: type %d has no name", ErrInvalidSchemaJSON, i)
		}
		if t.Kind == nil {
			return fmt.Errorf("%w: type %s has no kind", ErrInvalidSchemaJSON, *t.Name)
		}
		for j, f := range t.Fields {
			if f.Name == nil {
				return fmt.Errorf("%w: field %d of %s has no name", ErrInvalidSchemaJSON, j, *t.Name)
			}
			if f.Type == nil {
				return fmt.Errorf("%w: field %s of %s has no type", ErrInvalidSchemaJSON, *f.Name, *t.Name)
			}
			for ref := f.Type; ref != nil; ref = ref.OfType {
				if ref.Kind == nil {
					return fmt.Errorf("%w: type of field %s of %s has no kind", ErrInvalidSchemaJSON, *f.Name, *t.Name)
				}
			}
		}
	}
	return nil
}

// Decode is like Parse but reads the JSON from r
func Decode(r io.Reader) (*Root, error) {
	document, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w reading introspection JSON", err)
	}
	return Parse(document)
}

// IsEmpty returns true if there is no schema to search (ie "data" was null)
func (r *Root) IsEmpty() bool {
	return r == nil || r.Data == nil
}
