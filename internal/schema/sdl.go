package schema

// sdl.go builds the introspection model from a schema written in the GraphQL schema definition
// language (SDL) so that .graphql files can be searched as well as introspection results

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// LoadSDL parses a schema (SDL) and returns the same Root that decoding its introspection result would.
// Types are in name order; the meta fields (__schema, __type) added to the query type are omitted.
func LoadSDL(name, sdl string) (*Root, error) {
	astSchema, err := gqlparser.LoadSchema(&ast.Source{
		Name:  name,
		Input: sdl,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	return &Root{Data: &Data{Schema: FromAST(astSchema)}}, nil
}

// FromAST converts a schema parsed by gqlparser into the introspection model
func FromAST(astSchema *ast.Schema) Schema {
	r := Schema{
		Types: getTypes(astSchema),
	}
	if astSchema.Query != nil {
		r.QueryType = namedRef(astSchema.Query.Name, string(astSchema.Query.Kind))
	}
	if astSchema.Mutation != nil {
		r.MutationType = namedRef(astSchema.Mutation.Name, string(astSchema.Mutation.Kind))
	}
	return r
}

func getTypes(astSchema *ast.Schema) []Type {
	names := make([]string, 0, len(astSchema.Types))
	for name := range astSchema.Types {
		names = append(names, name)
	}
	sort.Strings(names) // map order is random but we want the same results every time

	r := make([]Type, 0, len(names))
	for _, name := range names {
		defn := astSchema.Types[name]
		t := Type{
			Name: name,
			Kind: string(defn.Kind),
		}
		if defn.Kind == ast.Object || defn.Kind == ast.Interface {
			t.Fields = getFields(astSchema, defn.Fields)
		}
		r = append(r, t)
	}
	return r
}

func getFields(astSchema *ast.Schema, fields ast.FieldList) []Field {
	r := make([]Field, 0, len(fields))
	for _, f := range fields {
		if strings.HasPrefix(f.Name, "__") {
			continue // __schema and __type are not declared in introspection results
		}
		r = append(r, Field{
			Name: f.Name,
			Type: getTypeRef(astSchema, f.Type),
		})
	}
	return r
}

// getTypeRef turns gqlparser's type (eg [User!]!) into a chain of wrapping references
func getTypeRef(astSchema *ast.Schema, t *ast.Type) TypeRef {
	if t.NonNull {
		nullable := *t
		nullable.NonNull = false
		inner := getTypeRef(astSchema, &nullable)
		return TypeRef{Kind: KindNonNull, OfType: &inner}
	}
	if t.Elem != nil {
		inner := getTypeRef(astSchema, t.Elem)
		return TypeRef{Kind: KindList, OfType: &inner}
	}
	kind := "SCALAR"
	if defn := astSchema.Types[t.NamedType]; defn != nil {
		kind = string(defn.Kind)
	}
	return *namedRef(t.NamedType, kind)
}

func namedRef(name, kind string) *TypeRef {
	return &TypeRef{Name: &name, Kind: kind}
}
