package schema_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/andrewwphillips/gqlpath/internal/schema"
)

func TestValidate(t *testing.T) {
	root, err := schema.Parse([]byte(blog))
	Assertf(t, err == nil, "Validate: parse error %v", err)
	if err != nil {
		return
	}
	Assertf(t, root.Data.Schema.Validate() == nil, "Validate: expected blog to be valid")

	meta := schema.Schema{Types: []schema.Type{*obj("__Type", "name", "kind")}}
	Assertf(t, meta.Validate() == nil, "Validate: expected meta types to be allowed")
}

func TestValidateErrors(t *testing.T) {
	testData := map[string]struct {
		s        schema.Schema
		contains string // expected in the error message
	}{
		"TypeName": {
			schema.Schema{Types: []schema.Type{{Name: "9Lives", Kind: "OBJECT"}}},
			`type "9Lives"`,
		},
		"EmptyTypeName": {
			schema.Schema{Types: []schema.Type{{Name: "", Kind: "SCALAR"}}},
			`type ""`,
		},
		"FieldName": {
			schema.Schema{Types: []schema.Type{*obj("User", "first-name")}},
			`field "first-name" of User`,
		},
		"UnnamedFieldType": {
			schema.Schema{Types: []schema.Type{{Name: "User", Kind: "OBJECT", Fields: []schema.Field{
				{Name: "friends", Type: schema.TypeRef{Kind: "LIST", OfType: &schema.TypeRef{Kind: "OBJECT"}}},
			}}}},
			"field friends doesn't have a type (in type User)",
		},
	}
	for name, data := range testData {
		err := data.s.Validate()
		Assertf(t, errors.Is(err, schema.ErrInvalidSchema), "ValidateErrors: %16s: expected ErrInvalidSchema got %v", name, err)
		Assertf(t, err != nil && strings.Contains(err.Error(), data.contains),
			"ValidateErrors: %16s: expected error containing %q got %v", name, data.contains, err)
	}

	// only object fields are checked
	iface := schema.Schema{Types: []schema.Type{{Name: "Node", Kind: "INTERFACE", Fields: []schema.Field{
		{Name: "id", Type: schema.TypeRef{Kind: "NON_NULL"}},
	}}}}
	Assertf(t, iface.Validate() == nil, "ValidateErrors: expected interface fields to be ignored")
}
