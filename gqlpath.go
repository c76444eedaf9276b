package gqlpath

// gqlpath.go provides the Schema type for loading a GraphQL schema and finding paths through it

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/andrewwphillips/gqlpath/internal/fetch"
	"github.com/andrewwphillips/gqlpath/internal/field"
	"github.com/andrewwphillips/gqlpath/internal/render"
	"github.com/andrewwphillips/gqlpath/internal/schema"
	"github.com/andrewwphillips/gqlpath/internal/search"
)

type (
	// Schema is a loaded GraphQL schema which can be searched any number of times
	Schema struct {
		root  *schema.Root
		types schema.TypeMap
	}
)

// Load reads a schema from source which may be:
//
//	http(s)://... - a GraphQL server that is sent an introspection query
//	ws(s)://...   - a GraphQL server that is sent an introspection query over a websocket
//	*.graphql     - a file containing the schema in SDL (also *.graphqls and *.gql)
//	-             - standard input (introspection JSON or SDL)
//	anything else - a file containing the JSON result of an introspection query
func Load(ctx context.Context, source string, options ...func(*Options)) (*Schema, error) {
	opt := newOptions(options)

	switch scheme(source) {
	case "http", "https":
		opt.log.Debug("fetching schema", "url", source)
		buf, err := fetch.HTTP(ctx, source, opt.fetchOptions()...)
		if err != nil {
			return nil, err
		}
		return Parse(buf)
	case "ws", "wss":
		opt.log.Debug("fetching schema over websocket", "url", source)
		buf, err := fetch.WebSocket(ctx, source, opt.fetchOptions()...)
		if err != nil {
			return nil, err
		}
		return Parse(buf)
	}

	if source == "-" {
		return readStdin(opt.stdin)
	}

	buf, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("%w reading schema", err)
	}
	opt.log.Debug("read schema file", "file", source, "bytes", len(buf))
	if isSDL(source) {
		return ParseSDL(string(buf))
	}
	return Parse(buf)
}

// Parse decodes the JSON result of an introspection query.  It returns an error wrapping
// ErrInvalidSchemaJSON if the document can't be decoded.
func Parse(document []byte) (*Schema, error) {
	root, err := schema.Parse(document)
	if err != nil {
		return nil, err
	}
	return newSchema(root), nil
}

// ParseSDL parses a schema in GraphQL schema definition language
func ParseSDL(sdl string) (*Schema, error) {
	root, err := schema.LoadSDL("schema", sdl)
	if err != nil {
		return nil, err
	}
	return newSchema(root), nil
}

// readStdin decodes introspection JSON or, if the first non-space character is not an opening
// brace, SDL
func readStdin(r io.Reader) (*Schema, error) {
	br := bufio.NewReader(r)
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			break // nothing but space is treated as invalid JSON
		}
		if err != nil {
			return nil, fmt.Errorf("%w reading standard input", err)
		}
		if unicode.IsSpace(ch) {
			continue
		}
		_ = br.UnreadRune()
		if ch != '{' {
			buf, err := io.ReadAll(br)
			if err != nil {
				return nil, fmt.Errorf("%w reading standard input", err)
			}
			return ParseSDL(string(buf))
		}
		break
	}
	root, err := schema.Decode(br)
	if err != nil {
		return nil, err
	}
	return newSchema(root), nil
}

func newSchema(root *schema.Root) *Schema {
	s := &Schema{root: root}
	if !root.IsEmpty() {
		s.types = root.Data.Schema.TypeMap()
	}
	return s
}

// IsEmpty returns true if the introspection result had no data (eg {"data": null})
func (s *Schema) IsEmpty() bool {
	return s.root.IsEmpty()
}

// Validate checks that the names of types and fields are valid and that every field of an
// object type has a named type.  It returns an error wrapping ErrInvalidSchema if not.
func (s *Schema) Validate() error {
	if s.IsEmpty() {
		return nil
	}
	return s.root.Data.Schema.Validate()
}

// TypeNames returns the names of all the types in the schema in alphabetical order
func (s *Schema) TypeNames() []string {
	r := make([]string, 0, len(s.types))
	for name := range s.types {
		r = append(r, name)
	}
	sort.Strings(r)
	return r
}

// Search finds the shortest paths from the root types to all the types and/or fields that
// match the query.  The query may contain several names (or patterns) separated by commas.
// Each target has one result for every root field from which it can be reached.
func (s *Schema) Search(query string, options ...func(*Options)) ([]Result, error) {
	queries, err := field.SplitQuery(query)
	if err != nil {
		return nil, err
	}
	if s.IsEmpty() {
		return nil, nil
	}
	opt := newOptions(options)

	finderOptions := []func(*search.Finder){
		search.Match(opt.mode),
		search.ShowRelay(opt.showRelay),
		search.Logger(opt.log),
	}
	if len(opt.roots) > 0 {
		finderOptions = append(finderOptions, search.Roots(opt.roots...))
	}
	finder := search.NewFinder(&s.root.Data.Schema, finderOptions...)
	var r []Result
	for _, q := range queries {
		found, err := finder.Run(q, opt.scope)
		if err != nil {
			return nil, err
		}
		r = append(r, found...)
	}
	opt.log.Debug("search finished", "query", query, "mode", opt.mode, "results", len(r))
	return r, nil
}

// Path returns the shortest path from one type to another (or nil if there is no path)
func (s *Schema) Path(from, to string) Path {
	return search.Search(from, to, s.types)
}

// Render writes the results as text (one per line) or, with the JSON option, as a JSON array.
// Relay types are left out of the paths unless the ShowRelay option is used.
func (s *Schema) Render(w io.Writer, results []Result, options ...func(*Options)) error {
	opt := newOptions(options)
	var r render.Renderer
	if opt.json {
		r = render.NewJSON(w, s.types, opt.showRelay)
	} else {
		r = render.NewText(w, s.types, render.Color(opt.color), render.ShowRelay(opt.showRelay))
	}
	return r.Render(results)
}

// scheme returns the (lower case) URL scheme of source or an empty string if it does not have one
func scheme(source string) string {
	i := strings.Index(source, "://")
	if i < 1 {
		return ""
	}
	return strings.ToLower(source[:i])
}

func isSDL(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".graphql", ".graphqls", ".gql":
		return true
	}
	return false
}
