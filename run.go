package gqlpath

// run.go provides the Run function for quickly finding paths without keeping the schema

import (
	"context"
	"io"
)

// Run loads the schema from source (see Load), searches it for query (see Schema.Search) and
// writes the results to w (see Schema.Render).  The options are used for all 3 steps.
// An empty schema (no data) is not an error - there are just no results.  The number of results is returned.
func Run(ctx context.Context, w io.Writer, source, query string, options ...func(*Options)) (int, error) {
	s, err := Load(ctx, source, options...)
	if err != nil {
		return 0, err
	}
	results, err := s.Search(query, options...)
	if err != nil {
		return 0, err
	}
	return len(results), s.Render(w, results, options...)
}

// MustParse is like Parse but panics if the document can't be decoded.  It is meant for
// schemas embedded in a program (eg with go:embed) that are known to be good.
func MustParse(document []byte) *Schema {
	s, err := Parse(document)
	if err != nil {
		panic("gqlpath.MustParse: " + err.Error())
	}
	return s
}
