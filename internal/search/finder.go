package search

// finder.go works out the targets that match a query and searches for each of them from the root types

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/andrewwphillips/gqlpath/internal/field"
	"github.com/andrewwphillips/gqlpath/internal/schema"
)

// Scope says what a query is matched against - type names, field names or both
type Scope int

const (
	All Scope = iota
	Types
	Fields
)

type (
	// Result is one way to get to a target from a root type.  For a field target the path ends with the field.
	Result struct {
		Target field.TypeField
		Root   string
		Path   field.Path
	}

	// Finder stores the (read-only) schema and the options used to answer queries
	Finder struct {
		types     schema.TypeMap
		objects   schema.TypeMap // just the object types (the only ones with fields to search)
		roots     []string
		mode      field.Mode
		showRelay bool
		log       *slog.Logger
	}
)

// NewFinder creates a Finder for a schema, which must not be modified while the Finder is in use.
// By default names are matched exactly, relay types are skipped and nothing is logged.
func NewFinder(s *schema.Schema, options ...func(*Finder)) *Finder {
	f := &Finder{
		types:   s.TypeMap(),
		objects: s.FilterTypeMap(schema.KindObject),
		roots:   s.RootNames(),
	}
	for _, option := range options {
		option(f)
	}
	if f.log == nil {
		f.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return f
}

// Match sets how queries are matched against type and field names
func Match(mode field.Mode) func(*Finder) {
	return func(f *Finder) {
		f.mode = mode
	}
}

// ShowRelay includes relay types (connections, edges, page info) as targets
func ShowRelay(on bool) func(*Finder) {
	return func(f *Finder) {
		f.showRelay = on
	}
}

// Roots replaces the root types that searches start from (default is the query then mutation type)
func Roots(names ...string) func(*Finder) {
	return func(f *Finder) {
		f.roots = names
	}
}

// Logger sets where debug messages about the search go
func Logger(l *slog.Logger) func(*Finder) {
	return func(f *Finder) {
		f.log = l
	}
}

// Run searches type names, field names or both (types first) for the query
func (f *Finder) Run(query string, scope Scope) ([]Result, error) {
	var r []Result
	if scope == All || scope == Types {
		found, err := f.ByType(query)
		if err != nil {
			return nil, err
		}
		r = append(r, found...)
	}
	if scope == All || scope == Fields {
		found, err := f.ByField(query)
		if err != nil {
			return nil, err
		}
		r = append(r, found...)
	}
	return r, nil
}

// ByType finds the paths to every type whose name matches the query.  With exact matching there is
// at most one target, otherwise the matching types are searched in name order.
func (f *Finder) ByType(query string) ([]Result, error) {
	m, err := field.NewMatcher(query, f.mode)
	if err != nil {
		return nil, err
	}

	var candidates []string
	if f.mode == field.Exact {
		candidates = []string{query}
	} else {
		for name := range f.types {
			if m.Match(name) {
				candidates = append(candidates, name)
			}
		}
		sort.Strings(candidates)
	}
	f.log.Debug("type search", "query", query, "mode", f.mode, "candidates", len(candidates))

	var r []Result
	for _, name := range candidates {
		t, ok := f.types[name]
		if !ok || !f.showRelay && t.IsRelay() {
			continue
		}
		found, err := f.fromRoots(field.New(name, ""))
		if err != nil {
			return nil, err
		}
		r = append(r, found...)
	}
	return r, nil
}

// ByField finds the paths to fields that match the query.  Each object type (in name order) is
// checked for the first of its fields that matches.
func (f *Finder) ByField(query string) ([]Result, error) {
	m, err := field.NewMatcher(query, f.mode)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(f.objects))
	for name := range f.objects {
		names = append(names, name)
	}
	sort.Strings(names)

	var r []Result
	for _, name := range names {
		t := f.objects[name]
		if !f.showRelay && t.IsRelay() {
			continue
		}
		fld := f.matchField(t, m)
		if fld == nil {
			continue
		}
		f.log.Debug("field search", "query", query, "type", name, "field", fld.Name)
		found, err := f.fromRoots(field.New(name, fld.Name))
		if err != nil {
			return nil, err
		}
		r = append(r, found...)
	}
	return r, nil
}

// matchField returns the first field of t that matches (or nil if none do)
func (f *Finder) matchField(t *schema.Type, m *field.Matcher) *schema.Field {
	if f.mode != field.Glob {
		return t.GetField(m.Query, f.mode == field.Containing)
	}
	for i := range t.Fields {
		if m.Match(t.Fields[i].Name) {
			return &t.Fields[i]
		}
	}
	return nil
}

// fromRoots searches for the target from each of the roots in turn
func (f *Finder) fromRoots(target field.TypeField) ([]Result, error) {
	var r []Result
	for _, root := range f.roots {
		paths, err := SearchFromRoot(root, target, f.types)
		if err != nil {
			return nil, fmt.Errorf("%w searching for %s", err, target)
		}
		f.log.Debug("searched from root", "root", root, "target", target.String(), "paths", len(paths))
		for _, p := range paths {
			r = append(r, Result{Target: target, Root: root, Path: p})
		}
	}
	return r, nil
}

// SearchFromRoot finds a path to the target starting from each field of the root type, in the
// order the fields are declared.  Each path starts with the root field, and if the target has a
// field the path finishes with it.  A root type that is not in the schema (it's common not to have
// a Mutation) just returns no paths.  An error is only returned if the schema is broken.
func SearchFromRoot(root string, target field.TypeField, types schema.TypeMap) ([]field.Path, error) {
	t, ok := types[root]
	if !ok {
		return nil, nil
	}

	var r []field.Path
	for i := range t.Fields {
		start, err := t.Fields[i].TypeName()
		if err != nil {
			return nil, err
		}
		found := Search(start, target.TypeName, types)
		if len(found) == 0 {
			continue
		}

		p := make(field.Path, 0, len(found)+2)
		p = append(p, field.New(root, t.Fields[i].Name))
		for _, hop := range found {
			if hop.HasField() {
				p = append(p, hop) // (drops the type-only hop when the root field is already the target type)
			}
		}
		if target.HasField() {
			p = append(p, target)
		}
		r = append(r, p)
	}
	return r, nil
}
