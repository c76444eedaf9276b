package schema_test

import (
	"errors"
	"testing"

	"github.com/andrewwphillips/gqlpath/internal/schema"
)

func str(s string) *string { return &s }

// obj makes an object type with fields that are all of type String
func obj(name string, fieldNames ...string) *schema.Type {
	t := &schema.Type{Name: name, Kind: schema.KindObject}
	for _, f := range fieldNames {
		t.Fields = append(t.Fields, schema.Field{Name: f, Type: schema.TypeRef{Name: str("String"), Kind: "SCALAR"}})
	}
	return t
}

func TestIsRelay(t *testing.T) {
	testData := map[string]struct {
		t        *schema.Type
		expected bool
	}{
		"Connection":          {obj("UserConnection", "edges", "pageInfo"), true},
		"ConnectionExtra":     {obj("UserConnection", "totalCount", "edges", "pageInfo"), true},
		"ConnectionNoPage":    {obj("UserConnection", "edges"), false},
		"ConnectionBadSuffix": {obj("UserConnections", "edges", "pageInfo"), false},
		"Edge":                {obj("UserEdge", "cursor", "node"), true},
		"EdgeNoCursor":        {obj("UserEdge", "node"), false},
		"PageInfo":            {obj("PageInfo", "hasNextPage", "hasPreviousPage", "startCursor"), true},
		"PageInfoOneWay":      {obj("PageInfo", "hasNextPage"), false},
		"PageInfoOtherName":   {obj("MyPageInfo", "hasNextPage", "hasPreviousPage"), false},
		"Domain":              {obj("User", "edges", "pageInfo", "cursor", "node"), false},
		"NoFields":            {obj("UserConnection"), false},
		"MixedUp":             {obj("UserEdge", "edges", "pageInfo"), false},
	}
	for name, data := range testData {
		got := data.t.IsRelay()
		Assertf(t, got == data.expected, "IsRelay: %20s: expected %v got %v", name, data.expected, got)
	}
}

func TestGetField(t *testing.T) {
	user := obj("User", "id", "firstName", "lastName", "name")
	testData := map[string]struct {
		name       string
		containing bool
		expected   string // expected field name ("" = not found)
	}{
		"Exact":             {"name", false, "name"},
		"ExactNotFound":     {"Name", false, ""},
		"ContainingFirst":   {"Name", true, "firstName"},
		"ContainingExact":   {"id", true, "id"},
		"ContainingNone":    {"zzz", true, ""},
		"ContainingOrdered": {"ame", true, "firstName"},
	}
	for name, data := range testData {
		got := user.GetField(data.name, data.containing)
		gotName := ""
		if got != nil {
			gotName = got.Name
		}
		Assertf(t, gotName == data.expected, "GetField: %18s: expected %q got %q", name, data.expected, gotName)
	}

	Assertf(t, obj("Empty").GetField("id", true) == nil, "GetField: expected nil for type with no fields")
}

func TestFieldMap(t *testing.T) {
	user := obj("User", "id", "name")
	m := user.FieldMap()
	Assertf(t, len(m) == 2, "FieldMap: expected 2 fields got %d", len(m))
	Assertf(t, m["name"] == &user.Fields[1], "FieldMap: expected entries to point into the type")

	scalar := &schema.Type{Name: "Int", Kind: "SCALAR"}
	Assertf(t, scalar.FieldMap() != nil && len(scalar.FieldMap()) == 0, "FieldMap: expected empty map for scalar")
	Assertf(t, !scalar.IsObject(), "IsObject: expected scalar not to be an object")
	Assertf(t, user.IsObject(), "IsObject: expected User to be an object")
}

func TestDeepest(t *testing.T) {
	// [Post!]!
	wrapped := schema.TypeRef{Kind: "NON_NULL", OfType: &schema.TypeRef{
		Kind: "LIST", OfType: &schema.TypeRef{
			Kind: "NON_NULL", OfType: &schema.TypeRef{
				Name: str("Post"), Kind: "OBJECT",
			},
		},
	}}
	deepest := wrapped.Deepest()
	Assertf(t, deepest.Name != nil && *deepest.Name == "Post", "Deepest: expected Post got %v", deepest.Name)
	Assertf(t, deepest.IsObject(), "Deepest: expected an object")
	Assertf(t, !wrapped.IsObject(), "IsObject: a wrapper should not be an object")
	Assertf(t, wrapped.Kind == "NON_NULL" && wrapped.OfType.Kind == "LIST", "Deepest: original reference was modified")

	deepest.Kind = "SCALAR" // must not affect the original
	Assertf(t, wrapped.OfType.OfType.OfType.Kind == "OBJECT", "Deepest: expected a copy not a reference")

	plain := schema.TypeRef{Name: str("ID"), Kind: "SCALAR"}
	Assertf(t, *plain.Deepest().Name == "ID", "Deepest: expected an unwrapped reference to be returned as is")
}

func TestFieldTypeName(t *testing.T) {
	f := schema.Field{Name: "posts", Type: schema.TypeRef{Kind: "LIST", OfType: &schema.TypeRef{Name: str("Post"), Kind: "OBJECT"}}}
	name, err := f.TypeName()
	Assertf(t, err == nil && name == "Post", "TypeName: expected Post got %q (%v)", name, err)

	broken := schema.Field{Name: "broken", Type: schema.TypeRef{Kind: "LIST", OfType: &schema.TypeRef{Kind: "OBJECT"}}}
	_, err = broken.TypeName()
	Assertf(t, errors.Is(err, schema.ErrInvalidSchema), "TypeName: expected ErrInvalidSchema got %v", err)
}
