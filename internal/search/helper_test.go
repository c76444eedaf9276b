package search_test

import (
	"strings"

	"github.com/andrewwphillips/gqlpath/internal/field"
	"github.com/andrewwphillips/gqlpath/internal/schema"
)

var scalars = map[string]bool{"ID": true, "String": true, "Int": true, "Float": true, "Boolean": true}

// object makes an object type.  Each field is written "name:Type" where the type may be
// a list ([Type]) and/or non-null (Type!).  Built in scalar names are scalars, anything else is an object.
func object(name string, fields ...string) schema.Type {
	t := schema.Type{Name: name, Kind: schema.KindObject}
	for _, f := range fields {
		parts := strings.SplitN(f, ":", 2)
		t.Fields = append(t.Fields, schema.Field{Name: parts[0], Type: ref(parts[1])})
	}
	return t
}

func ref(s string) schema.TypeRef {
	if strings.HasSuffix(s, "!") {
		inner := ref(s[:len(s)-1])
		return schema.TypeRef{Kind: schema.KindNonNull, OfType: &inner}
	}
	if strings.HasPrefix(s, "[") {
		inner := ref(s[1 : len(s)-1])
		return schema.TypeRef{Kind: schema.KindList, OfType: &inner}
	}
	name := s
	kind := schema.KindObject
	if scalars[s] {
		kind = "SCALAR"
	}
	return schema.TypeRef{Name: &name, Kind: kind}
}

func newSchema(types ...schema.Type) *schema.Schema {
	return &schema.Schema{Types: types}
}

// path makes a path from strings like "Query.user" or "User"
func path(hops ...string) field.Path {
	r := make(field.Path, 0, len(hops))
	for _, h := range hops {
		parts := strings.SplitN(h, ".", 2)
		if len(parts) == 1 {
			r = append(r, field.New(parts[0], ""))
		} else {
			r = append(r, field.New(parts[0], parts[1]))
		}
	}
	return r
}

// blog is Query { user: User }, User { id: ID, posts: [Post] }, Post { id: ID, author: User }
func blog() *schema.Schema {
	return newSchema(
		object("Query", "user:User"),
		object("User", "id:ID!", "posts:[Post!]!"),
		object("Post", "id:ID!", "author:User"),
		schema.Type{Name: "ID", Kind: "SCALAR"},
	)
}

// relay has a paginated list of users
func relay() *schema.Schema {
	return newSchema(
		object("Query", "users:UserConnection!"),
		object("UserConnection", "edges:[UserEdge]", "pageInfo:PageInfo!"),
		object("UserEdge", "cursor:String!", "node:User"),
		object("PageInfo", "hasNextPage:Boolean!", "hasPreviousPage:Boolean!"),
		object("User", "name:String", "nodeId:ID"),
	)
}
