// Package gqlpath finds how to get to a type or field of a GraphQL schema.
//
// Large GraphQL schemas are deeply nested so it's often not obvious what query you need
// to get at some data.  Given the schema (usually the result of an introspection query) and
// the name of a type or field, gqlpath finds the shortest chain of fields from each field of
// the root Query and Mutation types.  For example, in a blog schema:
//
//	s, err := gqlpath.Load(ctx, "blog.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	results, err := s.Search("author", gqlpath.Only(gqlpath.Fields))
//	...
//	s.Render(os.Stdout, results)
//
// which writes:
//
//	Post.author: Query.user -> User.posts -> Post.author
//
// The schema can be loaded from a JSON file, a GraphQL SDL file, or from a running server
// (over HTTP or a websocket).  Names can be matched exactly, by substring, or using glob
// patterns.  Relay pagination types (connections, edges and page info) are skipped, as they
// are just plumbing, unless the ShowRelay option is used.
//
// See cmd/gqlpath for a command line tool.
package gqlpath

// TODO:
// union and interface types (follow possible types as well as fields)
// list all paths to a target not just the shortest from each root field
