package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrewwphillips/gqlpath/internal/field"
	"github.com/andrewwphillips/gqlpath/internal/schema"
	"github.com/andrewwphillips/gqlpath/internal/search"
)

func TestSearch(t *testing.T) {
	testData := map[string]struct {
		s          *schema.Schema
		start, end string
		expected   field.Path
	}{
		"Self":          {newSchema(), "User", "User", path("User")},
		"SelfInSchema":  {blog(), "Post", "Post", path("Post")},
		"OneHop":        {blog(), "User", "Post", path("User.posts")},
		"TwoHops":       {blog(), "Query", "Post", path("Query.user", "User.posts")},
		"BackAgain":     {blog(), "Post", "Query", nil},
		"Cycle":         {blog(), "Post", "User", path("Post.author")},
		"ScalarTarget":  {blog(), "User", "ID", nil},
		"MissingStart":  {blog(), "Nowhere", "Post", nil},
		"MissingTarget": {blog(), "Query", "Nowhere", nil},
		"Shortest": {
			newSchema(
				object("S", "long:L1", "direct:T"),
				object("L1", "next:L2"),
				object("L2", "t:T"),
				object("T", "id:ID"),
			),
			"S", "T", path("S.direct"),
		},
		"ShortestDeep": {
			newSchema(
				object("S", "long:L1", "short:M"),
				object("L1", "next:L2"),
				object("L2", "next:L3"),
				object("L3", "t:T"),
				object("M", "t:[T!]"),
				object("T", "id:ID"),
			),
			"S", "T", path("S.short", "M.t"),
		},
		"TieFirstDeclared": {
			newSchema(
				object("S", "a:A", "b:B"),
				object("A", "t:T"),
				object("B", "t:T"),
				object("T"),
			),
			"S", "T", path("S.a", "A.t"),
		},
		"Dangling": {
			newSchema(
				object("S", "ghost:Ghost", "t:T"),
				object("T"),
			),
			"S", "T", path("S.t"),
		},
		"DanglingOnly": {
			newSchema(object("S", "ghost:Ghost")),
			"S", "Ghost", nil,
		},
	}
	for name, data := range testData {
		got := search.Search(data.start, data.end, data.s.TypeMap())
		assert.Equal(t, data.expected, got, name)
	}
}

func TestSearchSelfReference(t *testing.T) {
	// A has a field of its own type - the search must still finish
	s := newSchema(
		object("A", "me:A", "friends:[A!]!", "b:B"),
		object("B", "a:A"),
	)
	assert.Nil(t, search.Search("A", "Z", s.TypeMap()))
	assert.Equal(t, path("A.b"), search.Search("A", "B", s.TypeMap()))
	assert.Equal(t, path("B.a"), search.Search("B", "A", s.TypeMap()))
}

func TestSearchNonObjectNotFollowed(t *testing.T) {
	// a field of interface type is not followed
	s := newSchema(
		object("Query", "node:Node"),
		schema.Type{Name: "Node", Kind: "INTERFACE", Fields: []schema.Field{{Name: "t", Type: ref("T")}}},
		object("T"),
	)
	s.Types[0].Fields[0].Type.Kind = "INTERFACE"
	assert.Nil(t, search.Search("Query", "T", s.TypeMap()))
	// but an object field of the interface is followed if the search starts there
	assert.Equal(t, path("Node.t"), search.Search("Node", "T", s.TypeMap()))
}

func TestSearchFromRoot(t *testing.T) {
	types := blog().TypeMap()

	paths, err := search.SearchFromRoot("Query", field.New("Post", ""), types)
	assert.NoError(t, err)
	assert.Equal(t, []field.Path{path("Query.user", "User.posts")}, paths)

	// the root field is already the target type
	paths, err = search.SearchFromRoot("Query", field.New("User", ""), types)
	assert.NoError(t, err)
	assert.Equal(t, []field.Path{path("Query.user")}, paths)

	// a field target is added to the end
	paths, err = search.SearchFromRoot("Query", field.New("Post", "author"), types)
	assert.NoError(t, err)
	assert.Equal(t, []field.Path{path("Query.user", "User.posts", "Post.author")}, paths)

	// no mutation type
	paths, err = search.SearchFromRoot("Mutation", field.New("Post", ""), types)
	assert.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSearchFromRootEveryField(t *testing.T) {
	s := newSchema(
		object("Query", "post:Post", "version:String", "user:User", "posts:[Post]"),
		object("User", "posts:[Post!]!"),
		object("Post", "id:ID!"),
	)
	paths, err := search.SearchFromRoot("Query", field.New("Post", ""), s.TypeMap())
	assert.NoError(t, err)
	assert.Equal(t, []field.Path{
		path("Query.post"),
		path("Query.user", "User.posts"),
		path("Query.posts"),
	}, paths)
}

func TestSearchFromRootInvalid(t *testing.T) {
	s := newSchema(object("Query", "user:User"), object("User"))
	s.Types[0].Fields[0].Type.Name = nil

	_, err := search.SearchFromRoot("Query", field.New("User", ""), s.TypeMap())
	assert.ErrorIs(t, err, schema.ErrInvalidSchema)
}
